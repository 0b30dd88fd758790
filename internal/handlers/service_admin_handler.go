package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-studio/salon-scheduler/internal/audit"
	"github.com/velora-studio/salon-scheduler/internal/httperr"
	"github.com/velora-studio/salon-scheduler/internal/middleware"
	"github.com/velora-studio/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER — service catalog management (admin)
// ======================================================

type ServiceAdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceAdminHandler(db *gorm.DB, d *audit.Dispatcher) *ServiceAdminHandler {
	return &ServiceAdminHandler{db: db, audit: d}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	CategoryID  uint    `json:"category_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required"`
	ImageURL    string  `json:"image_url"`
}

type UpdateServiceRequest struct {
	CategoryID  *uint    `json:"category_id,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceAdminHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	ctx := c.Request.Context()

	var category models.Category
	if err := h.db.WithContext(ctx).First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.BadRequest(c, "category_not_found", "Category does not exist.")
			return
		}
		httperr.Internal(c, "db_error", "Could not load category.")
		return
	}

	service := models.Service{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
		ImageURL:    req.ImageURL,
	}

	if err := h.db.WithContext(ctx).Create(&service).Error; err != nil {
		httperr.Internal(c, "db_error", "Could not create service.")
		return
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
		Metadata: gin.H{"name": service.Name},
	})

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceAdminHandler) Update(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()

	var service models.Service
	if err := h.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "db_error", "Could not load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := h.db.WithContext(ctx).First(&category, *req.CategoryID).Error; err != nil {
			httperr.BadRequest(c, "category_not_found", "Category does not exist.")
			return
		}
		service.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin < 1 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be at least one minute.")
			return
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}

	if err := h.db.WithContext(ctx).Save(&service).Error; err != nil {
		httperr.Internal(c, "db_error", "Could not update service.")
		return
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
		Metadata: gin.H{"name": service.Name},
	})

	c.JSON(http.StatusOK, service)
}
