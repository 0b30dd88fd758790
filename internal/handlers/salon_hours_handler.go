package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-studio/salon-scheduler/internal/audit"
	"github.com/velora-studio/salon-scheduler/internal/cache"
	"github.com/velora-studio/salon-scheduler/internal/domain/schedule"
	"github.com/velora-studio/salon-scheduler/internal/httperr"
	"github.com/velora-studio/salon-scheduler/internal/httpresp"
	"github.com/velora-studio/salon-scheduler/internal/middleware"
	"github.com/velora-studio/salon-scheduler/internal/models"
	"github.com/velora-studio/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER — per-date opening-hours overrides (admin)
// ======================================================

type SalonHoursHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewSalonHoursHandler(db *gorm.DB, c *cache.Cache, d *audit.Dispatcher) *SalonHoursHandler {
	return &SalonHoursHandler{db: db, cache: c, audit: d}
}

type SalonHoursRequest struct {
	OpenTime        string `json:"open_time"`
	CloseTime       string `json:"close_time"`
	IsClosed        bool   `json:"is_closed"`
	IsHoliday       bool   `json:"is_holiday"`
	DisableBookings bool   `json:"disable_bookings"`
}

func (h *SalonHoursHandler) List(c *gin.Context) {
	var hours []models.SalonHours
	if err := h.db.WithContext(c.Request.Context()).
		Order("date ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "db_error", "Could not load salon hours.")
		return
	}

	httpresp.List(c, hours)
}

// Upsert creates or replaces the override for one date. The calendar
// cache is dropped so the date picker reflects the change immediately.
func (h *SalonHoursHandler) Upsert(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	var req SalonHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid salon hours data.")
		return
	}

	openMin, closeMin := -1, -1
	if req.OpenTime != "" {
		m, err := schedule.ParseClock(req.OpenTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "Opening time must be HH:MM.")
			return
		}
		openMin = m
	}
	if req.CloseTime != "" {
		m, err := schedule.ParseClock(req.CloseTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "Closing time must be HH:MM.")
			return
		}
		closeMin = m
	}
	if openMin >= 0 && closeMin >= 0 && openMin >= closeMin {
		httperr.BadRequest(c, "invalid_window", "Opening time must be before closing time.")
		return
	}

	ctx := c.Request.Context()

	var record models.SalonHours
	err := h.db.WithContext(ctx).Where("date = ?", date).First(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "db_error", "Could not load salon hours.")
		return
	}

	record.Date = date
	record.OpenTime = req.OpenTime
	record.CloseTime = req.CloseTime
	record.IsClosed = req.IsClosed
	record.IsHoliday = req.IsHoliday
	record.DisableBookings = req.DisableBookings

	if err := h.db.WithContext(ctx).Save(&record).Error; err != nil {
		httperr.Internal(c, "db_error", "Could not save salon hours.")
		return
	}

	h.cache.Delete(ctx, booking.SalonHoursCacheKey)

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "salon_hours_updated",
		Entity:   "salon_hours",
		EntityID: &record.ID,
		Metadata: gin.H{"date": date},
	})

	httpresp.OK(c, record)
}

func (h *SalonHoursHandler) Delete(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	ctx := c.Request.Context()

	var record models.SalonHours
	if err := h.db.WithContext(ctx).Where("date = ?", date).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "not_found", "No override exists for this date.")
			return
		}
		httperr.Internal(c, "db_error", "Could not load salon hours.")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&record).Error; err != nil {
		httperr.Internal(c, "db_error", "Could not delete salon hours.")
		return
	}

	h.cache.Delete(ctx, booking.SalonHoursCacheKey)

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "salon_hours_deleted",
		Entity:   "salon_hours",
		EntityID: &record.ID,
		Metadata: gin.H{"date": date},
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
