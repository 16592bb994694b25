package asset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/seatmap/seatmap-editor/backend-go/internal/api"
	"github.com/seatmap/seatmap-editor/backend-go/internal/editor"
	"github.com/seatmap/seatmap-editor/backend-go/internal/typeid"
)

// multipart overhead allowed on top of the image itself
const formOverhead = 1 << 20

// UploadResponse is returned from the background upload endpoint.
type UploadResponse struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspectRatio"`
	MIME        string  `json:"mime"`
	Name        string  `json:"name"`
}

// Handler stores background images and serves them back.
type Handler struct {
	dir string // directory to store asset files
}

// NewHandler creates a new asset handler that stores files in dir.
func NewHandler(dir string) *Handler {
	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.Error("create asset dir", "error", err, "dir", dir)
	}
	return &Handler{dir: dir}
}

// Upload handles POST /api/maps/background (multipart form with "file" field).
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, editor.MaxBackgroundBytes+formOverhead)

	if err := r.ParseMultipartForm(editor.MaxBackgroundBytes); err != nil {
		api.WriteError(w, http.StatusRequestEntityTooLarge, api.CodeTooLarge, "file size exceeds 10MB limit", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeInvalidRequest, "missing file field", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, editor.MaxBackgroundBytes+1))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeInvalidRequest, "failed to read file", nil)
		return
	}

	info, err := editor.ValidateBackground(data)
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrImageTooLarge):
			api.WriteError(w, http.StatusRequestEntityTooLarge, api.CodeTooLarge, err.Error(), nil)
		default:
			slog.Warn("background rejected", "error", err, "name", header.Filename)
			api.WriteError(w, http.StatusBadRequest, api.CodeValidation, err.Error(), nil)
		}
		return
	}

	assetID := typeid.NewAssetID()
	filename := assetID + info.Extension
	if err := os.WriteFile(filepath.Join(h.dir, filename), data, 0644); err != nil {
		slog.Error("write asset file", "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "failed to save file", nil)
		return
	}

	api.WriteData(w, http.StatusCreated, UploadResponse{
		ID:          assetID,
		URL:         fmt.Sprintf("/assets/%s", filename),
		Width:       info.Width,
		Height:      info.Height,
		AspectRatio: info.AspectRatio,
		MIME:        info.MIME,
		Name:        header.Filename,
	})
}

// Serve returns an http.Handler that serves stored asset files with caching headers.
func (h *Handler) Serve() http.Handler {
	fs := http.FileServer(http.Dir(h.dir))
	return http.StripPrefix("/assets/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Asset IDs are unique, so files are immutable
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		fs.ServeHTTP(w, r)
	}))
}
