package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-studio/salon-scheduler/internal/httperr"
	"github.com/velora-studio/salon-scheduler/internal/httpresp"
	"github.com/velora-studio/salon-scheduler/internal/models"
	"github.com/velora-studio/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *booking.GetAvailability
	calendarUC     *booking.GetCalendar
	createUC       *booking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *booking.GetAvailability,
	calendarUC *booking.GetCalendar,
	createUC *booking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		calendarUC:     calendarUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required,max=2000"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.db.
		Order("position ASC, id ASC").
		Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Could not load categories.")
		return
	}

	httpresp.List(c, categories)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Preload("Category").
		Where("active = true")

	if category != "" {
		q = q.Joins("JOIN categories ON categories.id = services.category_id").
			Where("categories.slug = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(services.name) LIKE ? OR LOWER(services.description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("services.id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) GetService(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Preload("Category").
		Where("id = ? AND active = true", id).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, service)
}

////////////////////////////////////////////////////////
// CALENDAR + AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Calendar(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	daysInfo, err := h.calendarUC.Execute(c.Request.Context(), days)
	if err != nil {
		httperr.Internal(c, "calendar_failed", "Could not load the calendar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": daysInfo})
}

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date and service are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service.")
		return
	}

	result, err := h.availabilityUC.Execute(
		c.Request.Context(),
		booking.AvailabilityInput{
			Date:      dateStr,
			ServiceID: uint(serviceID),
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Invalid service.")
		default:
			httperr.Internal(c, "availability_failed", "Could not compute time slots.")
		}
		return
	}

	httpresp.OK(c, result)
}

////////////////////////////////////////////////////////
// GUEST BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		booking.CreateBookingInput{
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

////////////////////////////////////////////////////////
// GALLERY + CONTACT
////////////////////////////////////////////////////////

func (h *PublicHandler) ListGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := h.db.
		Order("position ASC, id ASC").
		Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_list_gallery", "Could not load the gallery.")
		return
	}

	httpresp.List(c, images)
}

func (h *PublicHandler) CreateContactMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid contact data.")
		return
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_save_message", "Could not send your message.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "received"})
}

////////////////////////////////////////////////////////
// SHARED ERROR MAPPING
////////////////////////////////////////////////////////

func mapCreateBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	case httperr.IsBusiness(err, "day_not_bookable"):
		httperr.BadRequest(c, "day_not_bookable", "This day is not open for booking.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Invalid service.")
	case httperr.IsBusiness(err, "outside_opening_hours"):
		httperr.BadRequest(c, "outside_opening_hours", "Outside opening hours.")
	case httperr.IsBusiness(err, "time_in_past"):
		httperr.BadRequest(c, "time_in_past", "This time has already passed.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.BadRequest(c, "time_conflict", "This time is no longer available.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Could not create the booking.")
	}
}
