// Package api holds the JSON envelope shared by every HTTP handler.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Error codes used in error envelopes.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeValidation     = "VALIDATION_ERROR"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeTooLarge       = "PAYLOAD_TOO_LARGE"
	CodeInternal       = "INTERNAL_ERROR"
)

type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    Meta       `json:"meta"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	Timestamp string `json:"timestamp"`
}

// FieldError is one failed request field, reported in error details.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var now = time.Now

func meta() Meta {
	return Meta{Timestamp: now().UTC().Format(time.RFC3339)}
}

func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data, Meta: meta()})
}

func WriteError(w http.ResponseWriter, status int, code, message string, details any) {
	writeJSON(w, status, Envelope{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
		Meta:  meta(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// RequestError is a request body that could not be decoded or failed its
// validate tags.
type RequestError struct {
	Message string
	Fields  []FieldError
}

func (e *RequestError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s %s", e.Message, e.Fields[0].Field, e.Fields[0].Message)
}

// Decode reads a JSON body into dst and runs its validate tags.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &RequestError{Message: "invalid request body"}
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate request: %w", err)
		}
		fields := make([]FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = FieldError{Field: fe.Field(), Message: fieldMessage(fe)}
		}
		return &RequestError{Message: "invalid request", Fields: fields}
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "is invalid"
	}
}

// WriteRequestError answers a Decode failure with 400.
func WriteRequestError(w http.ResponseWriter, err error) {
	var rerr *RequestError
	if errors.As(err, &rerr) {
		code := CodeInvalidRequest
		var details any
		if len(rerr.Fields) > 0 {
			code = CodeValidation
			details = rerr.Fields
		}
		WriteError(w, http.StatusBadRequest, code, rerr.Error(), details)
		return
	}
	WriteError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error(), nil)
}
