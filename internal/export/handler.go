package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/seatmap/seatmap-editor/backend-go/internal/api"
	"github.com/seatmap/seatmap-editor/backend-go/internal/auth"
	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/maps"
)

const maxUploadSize = 10 << 20 // 10MB

// Exporter loads a stored map as export JSON plus its display name.
type Exporter interface {
	Export(ctx context.Context, id, userID string) ([]byte, string, error)
}

type Handler struct {
	maps Exporter
}

func NewHandler(maps Exporter) *Handler {
	return &Handler{maps: maps}
}

// Download handles GET /api/maps/{mapId}/export.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	mapID := mux.Vars(r)["mapId"]

	data, name, err := h.maps.Export(r.Context(), mapID, userID)
	if err != nil {
		switch {
		case errors.Is(err, maps.ErrNotFound):
			api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "seat map not found", nil)
		case errors.Is(err, maps.ErrForbidden):
			api.WriteError(w, http.StatusForbidden, api.CodeForbidden, "forbidden", nil)
		default:
			slog.Error("export seat map", "error", err, "map", mapID)
			api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error", nil)
		}
		return
	}

	writeAttachment(w, name, data)
	slog.Info("export complete", "map", mapID, "size", len(data))
}

// Convert handles POST /export/seatmap. The posted map is validated like an
// import and echoed back as a normalized download, for editors that keep
// their maps client side.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.WriteError(w, http.StatusRequestEntityTooLarge, api.CodeTooLarge, "request too large", nil)
		return
	}

	doc, err := document.Import(body)
	if err != nil {
		var verr *document.ValidationError
		if errors.As(err, &verr) {
			api.WriteError(w, http.StatusBadRequest, api.CodeValidation, "invalid seat map", verr)
			return
		}
		api.WriteError(w, http.StatusBadRequest, api.CodeInvalidRequest, err.Error(), nil)
		return
	}

	data, err := document.Export(doc)
	if err != nil {
		slog.Error("encode seat map", "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error", nil)
		return
	}

	writeAttachment(w, doc.Name, data)
}

func writeAttachment(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.json"`, FileName(name)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// FileName reduces a map name to a safe download name.
func FileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "seatmap"
	}
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
}
