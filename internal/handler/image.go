package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/domain"
	"github.com/DukeRupert/florian/internal/service"
)

// imageCacheControl matches the image optimizer's minimum cache TTL.
const imageCacheControl = "public, max-age=60"

// ImageHandler serves resized site images.
type ImageHandler struct {
	images *service.ImageService
	logger *slog.Logger
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(images *service.ImageService, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{images: images, logger: logger}
}

// RegisterRoutes registers the image route.
func (h *ImageHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /images/{name}", h.Serve)
}

// Serve handles GET /images/{name}?w=<width>. A missing width serves
// content.DefaultWidth. Unknown images are 404; bad widths are 400.
func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	width := content.DefaultWidth
	if raw := r.URL.Query().Get("w"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid width", http.StatusBadRequest)
			return
		}
		width = n
	}

	v, err := h.images.Variant(r.Context(), name, width)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageNotFound):
			http.NotFound(w, r)
		case domain.ErrorCode(err) == domain.EINVALID:
			http.Error(w, domain.ErrorMessage(err), http.StatusBadRequest)
		default:
			ErrorResponse(w, r, h.logger, err)
		}
		return
	}

	w.Header().Set("Content-Type", v.ContentType)
	w.Header().Set("Cache-Control", imageCacheControl)
	http.ServeContent(w, r, name, v.ModTime, bytes.NewReader(v.Data))
}
