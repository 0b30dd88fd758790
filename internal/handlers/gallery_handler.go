package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-studio/salon-scheduler/internal/audit"
	"github.com/velora-studio/salon-scheduler/internal/httperr"
	"github.com/velora-studio/salon-scheduler/internal/httpresp"
	"github.com/velora-studio/salon-scheduler/internal/middleware"
	"github.com/velora-studio/salon-scheduler/internal/models"
	"github.com/velora-studio/salon-scheduler/internal/storage"
)

// uploads larger than this are rejected before decoding
const maxGalleryUploadBytes = 10 << 20

// ======================================================
// HANDLER — gallery management (admin)
// ======================================================

type GalleryHandler struct {
	db      *gorm.DB
	storage *storage.GalleryStorage
	audit   *audit.Dispatcher
}

func NewGalleryHandler(db *gorm.DB, s *storage.GalleryStorage, d *audit.Dispatcher) *GalleryHandler {
	return &GalleryHandler{db: db, storage: s, audit: d}
}

// Upload takes a multipart image, re-encodes it to webp, pushes it to
// the bucket and records the row. The form carries "image" plus
// optional "caption" and "position" fields.
func (h *GalleryHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	if file.Size > maxGalleryUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be under 10 MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_error", "Could not read the uploaded file.")
		return
	}
	defer src.Close()

	ctx := c.Request.Context()

	key, url, err := h.storage.Upload(ctx, src)
	if err != nil {
		httperr.Internal(c, "upload_error", "Could not store the image.")
		return
	}

	position := 0
	if p := c.PostForm("position"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			position = n
		}
	}

	img := models.GalleryImage{
		Key:      key,
		URL:      url,
		Caption:  c.PostForm("caption"),
		Position: position,
	}

	if err := h.db.WithContext(ctx).Create(&img).Error; err != nil {
		// best effort: don't leave an orphaned object behind
		_ = h.storage.Delete(ctx, key)
		httperr.Internal(c, "db_error", "Could not save the image record.")
		return
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "gallery_image_uploaded",
		Entity:   "gallery_image",
		EntityID: &img.ID,
		Metadata: gin.H{"key": key},
	})

	c.JSON(http.StatusCreated, img)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Image id must be numeric.")
		return
	}

	ctx := c.Request.Context()

	var img models.GalleryImage
	if err := h.db.WithContext(ctx).First(&img, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "image_not_found", "Image not found.")
			return
		}
		httperr.Internal(c, "db_error", "Could not load the image.")
		return
	}

	if err := h.storage.Delete(ctx, img.Key); err != nil {
		httperr.Internal(c, "storage_error", "Could not delete the stored image.")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&img).Error; err != nil {
		httperr.Internal(c, "db_error", "Could not delete the image record.")
		return
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "gallery_image_deleted",
		Entity:   "gallery_image",
		EntityID: &img.ID,
		Metadata: gin.H{"key": img.Key},
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
