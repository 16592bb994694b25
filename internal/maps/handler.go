package maps

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/seatmap/seatmap-editor/backend-go/internal/api"
	"github.com/seatmap/seatmap-editor/backend-go/internal/auth"
	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/editor"
	"github.com/seatmap/seatmap-editor/backend-go/internal/embed"
	"github.com/seatmap/seatmap-editor/backend-go/internal/transform"
)

const maxDocumentSize = 10 << 20 // 10MB

// StatusBroadcaster pushes seat status changes to live embed viewers.
type StatusBroadcaster interface {
	ApplyStatuses(mapID string, updates []embed.StatusUpdate) int
}

type Handler struct {
	service *Service
	viewers StatusBroadcaster
}

func NewHandler(service *Service, viewers StatusBroadcaster) *Handler {
	return &Handler{service: service, viewers: viewers}
}

type createRequest struct {
	Name string `json:"name" validate:"max=100"`
}

type publishRequest struct {
	Published *bool `json:"published" validate:"required"`
}

type gridResponse struct {
	Map     *Detail  `json:"map"`
	SeatIDs []string `json:"seatIds"`
}

type statusResponse struct {
	Viewers int `json:"viewers"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	maps, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, maps)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req createRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteRequestError(w, err)
		return
	}

	m, err := h.service.Create(r.Context(), userID, req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.WriteData(w, http.StatusCreated, m)
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	data, ok := readDocument(w, r)
	if !ok {
		return
	}

	m, err := h.service.Import(r.Context(), userID, data)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.WriteData(w, http.StatusCreated, m)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	mapID := mux.Vars(r)["mapId"]

	m, err := h.service.Get(r.Context(), mapID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, m)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	mapID := mux.Vars(r)["mapId"]

	data, ok := readDocument(w, r)
	if !ok {
		return
	}

	m, err := h.service.Update(r.Context(), mapID, userID, data)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, m)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	mapID := mux.Vars(r)["mapId"]

	if err := h.service.Delete(r.Context(), mapID, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	mapID := mux.Vars(r)["mapId"]

	var req publishRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteRequestError(w, err)
		return
	}

	if err := h.service.SetPublished(r.Context(), mapID, userID, *req.Published); err != nil {
		handleServiceError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, map[string]bool{"published": *req.Published})
}

func (h *Handler) GenerateGrid(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	mapID := mux.Vars(r)["mapId"]

	var req editor.GridRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteRequestError(w, err)
		return
	}

	m, ids, err := h.service.GenerateGrid(r.Context(), mapID, userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if ids == nil {
		ids = []string{}
	}
	api.WriteData(w, http.StatusOK, gridResponse{Map: m, SeatIDs: ids})
}

// SetStatus pushes live seat statuses to the map's embed viewers. The body
// is the same bare array the seatmap:setStatus command carries.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	mapID := mux.Vars(r)["mapId"]

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeInvalidRequest, "invalid request body", nil)
		return
	}
	updates, err := embed.ParseStatusUpdates(body)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeInvalidRequest, err.Error(), nil)
		return
	}

	if err := h.service.Authorize(r.Context(), mapID, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	n := h.viewers.ApplyStatuses(mapID, updates)
	api.WriteData(w, http.StatusOK, statusResponse{Viewers: n})
}

// Published serves a published map to anonymous embed viewers.
func (h *Handler) Published(w http.ResponseWriter, r *http.Request) {
	mapID := mux.Vars(r)["mapId"]

	data, err := h.service.Published(r.Context(), mapID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	api.WriteData(w, http.StatusOK, data)
}

func readDocument(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			api.WriteError(w, http.StatusRequestEntityTooLarge, api.CodeTooLarge, "document too large (max 10MB)", nil)
			return nil, false
		}
		api.WriteError(w, http.StatusBadRequest, api.CodeInvalidRequest, "invalid request body", nil)
		return nil, false
	}
	return data, true
}

func handleServiceError(w http.ResponseWriter, err error) {
	var verr *document.ValidationError
	switch {
	case errors.As(err, &verr):
		api.WriteError(w, http.StatusBadRequest, api.CodeValidation, "invalid seat map", verr)
	case errors.Is(err, ErrNotFound):
		api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "seat map not found", nil)
	case errors.Is(err, ErrForbidden):
		api.WriteError(w, http.StatusForbidden, api.CodeForbidden, "forbidden", nil)
	case errors.Is(err, transform.ErrInvalidGrid):
		api.WriteError(w, http.StatusBadRequest, api.CodeValidation, err.Error(), nil)
	case errors.Is(err, editor.ErrSeatLimit):
		api.WriteError(w, http.StatusUnprocessableEntity, api.CodeValidation, err.Error(), nil)
	default:
		slog.Error("service error", "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error", nil)
	}
}
