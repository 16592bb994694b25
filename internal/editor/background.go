package editor

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/geometry"
)

// MaxBackgroundBytes caps background image uploads at 10MB.
const MaxBackgroundBytes = 10 << 20

// ImageInfo describes an accepted background image.
type ImageInfo struct {
	MIME        string  `json:"mime"`
	Extension   string  `json:"extension"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspectRatio"`
}

// ValidateBackground sniffs the image type from its bytes and reads its
// natural size. Oversized or non-image payloads are rejected.
func ValidateBackground(data []byte) (ImageInfo, error) {
	if len(data) > MaxBackgroundBytes {
		return ImageInfo{}, fmt.Errorf("file size exceeds %dMB limit: %w", MaxBackgroundBytes>>20, ErrImageTooLarge)
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return ImageInfo{}, fmt.Errorf("invalid file type %s: %w", mt.String(), ErrUnsupportedImage)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("failed to load image %s: %w", mt.String(), ErrUnsupportedImage)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return ImageInfo{}, fmt.Errorf("image has no pixels: %w", ErrUnsupportedImage)
	}
	return ImageInfo{
		MIME:        mt.String(),
		Extension:   mt.Extension(),
		Width:       cfg.Width,
		Height:      cfg.Height,
		AspectRatio: geometry.AspectRatio(float64(cfg.Width), float64(cfg.Height)),
	}, nil
}

// SetBackground points the map at an image already validated and stored
// by the host.
func (e *Editor) SetBackground(url string, info ImageInfo) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	e.commit(document.UpdateBackground(e.doc, document.BackgroundPatch{
		URL:         document.Ptr(url),
		Width:       document.Ptr(float64(info.Width)),
		Height:      document.Ptr(float64(info.Height)),
		AspectRatio: document.Ptr(info.AspectRatio),
	}))
	return nil
}

// UploadBackground validates raw image bytes and embeds them as a data URL.
// On error the document is unchanged.
func (e *Editor) UploadBackground(data []byte) (ImageInfo, error) {
	if e.doc == nil {
		return ImageInfo{}, ErrNoDocument
	}
	info, err := ValidateBackground(data)
	if err != nil {
		slog.Warn("background rejected", "error", err, "size", len(data))
		return ImageInfo{}, err
	}
	url := "data:" + info.MIME + ";base64," + base64.StdEncoding.EncodeToString(data)
	return info, e.SetBackground(url, info)
}

// RemoveBackground clears the background image.
func (e *Editor) RemoveBackground() error {
	if e.doc == nil {
		return ErrNoDocument
	}
	e.commit(document.RemoveBackground(e.doc))
	return nil
}

// ToggleBackgroundLock flips the lock and returns the new state.
func (e *Editor) ToggleBackgroundLock() (bool, error) {
	if e.doc == nil {
		return false, ErrNoDocument
	}
	locked := !e.doc.Background.IsLocked()
	e.commit(document.UpdateBackground(e.doc, document.BackgroundPatch{Locked: document.Ptr(locked)}))
	return locked, nil
}

// MoveBackground records a background drag. Locked backgrounds do not move.
func (e *Editor) MoveBackground(to geometry.Point) error {
	return e.placeBackground(document.BackgroundPatch{X: document.Ptr(to.X), Y: document.Ptr(to.Y)})
}

// TransformBackground records a background move and resize.
func (e *Editor) TransformBackground(to geometry.Point, scale float64) error {
	return e.placeBackground(document.BackgroundPatch{
		X:     document.Ptr(to.X),
		Y:     document.Ptr(to.Y),
		Scale: document.Ptr(scale),
	})
}

func (e *Editor) placeBackground(patch document.BackgroundPatch) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if e.doc.Background.IsLocked() {
		return nil
	}
	e.commit(document.UpdateBackground(e.doc, patch))
	return nil
}
