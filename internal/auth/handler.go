package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/seatmap/seatmap-editor/backend-go/internal/api"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"displayName" validate:"required,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteRequestError(w, err)
		return
	}

	result, err := h.service.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			api.WriteError(w, http.StatusConflict, api.CodeConflict, "email already registered", nil)
			return
		}
		slog.Error("register failed", "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error", nil)
		return
	}

	api.WriteData(w, http.StatusCreated, result)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteRequestError(w, err)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			api.WriteError(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid credentials", nil)
			return
		}
		slog.Error("login failed", "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error", nil)
		return
	}

	api.WriteData(w, http.StatusOK, result)
}

// Me returns the signed-in user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "user not found", nil)
			return
		}
		slog.Error("get user failed", "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error", nil)
		return
	}
	api.WriteData(w, http.StatusOK, user)
}
