package handlers

import (
	"errors"
	"strconv"
	"strings"

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
// HANDLER — booking moderation (admin)
// ======================================================

type AdminBookingHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewAdminBookingHandler(db *gorm.DB, c *cache.Cache, d *audit.Dispatcher) *AdminBookingHandler {
	return &AdminBookingHandler{db: db, cache: c, audit: d}
}

func (h *AdminBookingHandler) List(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	status := strings.TrimSpace(c.Query("status"))

	q := h.db.WithContext(c.Request.Context()).Model(&models.Booking{})

	if date != "" {
		q = q.Where("date = ?", date)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Order("date ASC, time ASC").Find(&bookings).Error; err != nil {
		httperr.Internal(c, "db_error", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *AdminBookingHandler) Accept(c *gin.Context) {
	h.transition(c, "accept")
}

func (h *AdminBookingHandler) Reject(c *gin.Context) {
	h.transition(c, "reject")
}

// transition moves a pending booking to accepted or rejected. Only
// pending bookings may transition; anything else is invalid_state.
func (h *AdminBookingHandler) transition(c *gin.Context, action string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	ctx := c.Request.Context()

	var b models.Booking
	if err := h.db.WithContext(ctx).First(&b, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "db_error", "Could not load booking.")
		return
	}

	current := schedule.Status(b.Status)

	var next schedule.Status
	var checkErr error
	if action == "accept" {
		next, checkErr = schedule.StatusAccepted, schedule.CanAccept(current)
	} else {
		next, checkErr = schedule.StatusRejected, schedule.CanReject(current)
	}

	if checkErr != nil {
		httperr.BadRequest(c, "invalid_state",
			"Only pending bookings can be "+action+"ed.")
		return
	}

	b.Status = string(next)
	if err := h.db.WithContext(ctx).Save(&b).Error; err != nil {
		httperr.Internal(c, "db_error", "Could not update booking.")
		return
	}

	// rejection frees the slot right away
	if next == schedule.StatusRejected {
		h.cache.Delete(ctx, booking.AvailabilityCacheKey(b.Date, b.ServiceID))
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_" + string(next),
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: gin.H{"reference": b.Reference, "date": b.Date, "time": b.Time},
	})

	httpresp.OK(c, b)
}
