package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velora-studio/salon-scheduler/internal/httperr"
	"github.com/velora-studio/salon-scheduler/internal/httpresp"
	"github.com/velora-studio/salon-scheduler/internal/middleware"
	"github.com/velora-studio/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER — the customer's bookings dashboard
// ======================================================

type BookingHandler struct {
	createUC *booking.CreateBooking
	cancelUC *booking.CancelBooking
	deleteUC *booking.DeleteBooking
	listUC   *booking.ListUserBookings
}

func NewBookingHandler(
	createUC *booking.CreateBooking,
	cancelUC *booking.CancelBooking,
	deleteUC *booking.DeleteBooking,
	listUC *booking.ListUserBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
}

// ======================================================
// CREATE (bound to the logged-in customer)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		booking.CreateBookingInput{
			CustomerID:    &userID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			ServiceID:     req.ServiceID,
			Date:          req.Date,
			Time:          req.Time,
		},
	)

	if err != nil {
		mapCreateBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load your bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "This booking can no longer be cancelled.")
		default:
			httperr.Internal(c, "failed_to_cancel_booking", "Could not cancel the booking.")
		}
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, uint(id)); err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "This booking cannot be removed yet.")
		default:
			httperr.Internal(c, "failed_to_delete_booking", "Could not remove the booking.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
