package document

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue is one schema violation, addressed by its JSON field path.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError lists every violation found in a rejected document.
type ValidationError struct {
	Issues []Issue `json:"issues"`
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid seat map"
	}
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		if is.Path == "" {
			parts[i] = is.Message
			continue
		}
		parts[i] = is.Path + ": " + is.Message
	}
	return "invalid seat map: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks m against the seat-map schema and its cross-field rules.
// It returns nil or a *ValidationError.
func Validate(m *SeatMap) error {
	if m == nil {
		return &ValidationError{Issues: []Issue{{Message: "document is empty"}}}
	}
	var issues []Issue
	if err := validate.Struct(m); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("validate seat map: %w", err)
		}
		for _, fe := range verrs {
			issues = append(issues, Issue{Path: fieldPath(fe.Namespace()), Message: fieldMessage(fe)})
		}
	}
	issues = append(issues, crossFieldIssues(m)...)
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func crossFieldIssues(m *SeatMap) []Issue {
	var issues []Issue
	if len(m.Seats) > MaxSeats {
		issues = append(issues, Issue{Path: "seats", Message: fmt.Sprintf("must contain at most %d seats", MaxSeats)})
	}
	seen := make(map[string]struct{}, len(m.Seats))
	for i, s := range m.Seats {
		if s.ID == "" {
			continue
		}
		if _, dup := seen[s.ID]; dup {
			issues = append(issues, Issue{Path: fmt.Sprintf("seats[%d].id", i), Message: fmt.Sprintf("duplicate seat id %q", s.ID)})
		}
		seen[s.ID] = struct{}{}
	}
	return issues
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	_, rest, found := strings.Cut(ns, ".")
	if !found {
		return ns
	}
	return rest
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be > %s", fe.Param())
	case "eq":
		return fmt.Sprintf("must be %q", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "uri":
		return "must be a URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
