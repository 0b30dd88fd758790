package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/velora-studio/salon-scheduler/internal/audit"
	"github.com/velora-studio/salon-scheduler/internal/cache"
	"github.com/velora-studio/salon-scheduler/internal/config"
	"github.com/velora-studio/salon-scheduler/internal/handlers"
	infraRepo "github.com/velora-studio/salon-scheduler/internal/infra/repository"
	"github.com/velora-studio/salon-scheduler/internal/middleware"
	"github.com/velora-studio/salon-scheduler/internal/storage"
	"github.com/velora-studio/salon-scheduler/internal/timezone"
	ucBooking "github.com/velora-studio/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	redisCache := cache.New(cfg, log)
	galleryStorage := storage.NewGalleryStorage(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// all scheduling math runs in the salon's timezone
	salonNow := func() time.Time {
		return timezone.NowIn(cfg.SalonTimezone)
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, redisCache, salonNow)
	calendarUC := ucBooking.NewGetCalendar(bookingRepo, redisCache, salonNow)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		redisCache,
		auditDispatcher,
		salonNow,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		redisCache,
		auditDispatcher,
		salonNow,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
		salonNow,
	)

	listBookingsUC := ucBooking.NewListUserBookings(bookingRepo, salonNow)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		calendarUC,
		createBookingUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		deleteBookingUC,
		listBookingsUC,
	)

	salonHoursHandler := handlers.NewSalonHoursHandler(db, redisCache, auditDispatcher)
	adminBookingHandler := handlers.NewAdminBookingHandler(db, redisCache, auditDispatcher)
	serviceAdminHandler := handlers.NewServiceAdminHandler(db, auditDispatcher)
	galleryHandler := handlers.NewGalleryHandler(db, galleryStorage, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/categories", publicHandler.ListCategories)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/services/:id", publicHandler.GetService)
			publicAPI.GET("/calendar", publicHandler.Calendar)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/gallery", publicHandler.ListGallery)
			publicAPI.POST("/contact", publicHandler.CreateContactMessage)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE (logged-in customers)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/bookings", bookingHandler.List)
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.DELETE("/me/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/salon-hours", salonHoursHandler.List)
				admin.PUT("/salon-hours/:date", salonHoursHandler.Upsert)
				admin.DELETE("/salon-hours/:date", salonHoursHandler.Delete)

				admin.GET("/bookings", adminBookingHandler.List)
				admin.PATCH("/bookings/:id/accept", adminBookingHandler.Accept)
				admin.PATCH("/bookings/:id/reject", adminBookingHandler.Reject)

				admin.POST("/services", serviceAdminHandler.Create)
				admin.PATCH("/services/:id", serviceAdminHandler.Update)

				admin.POST("/gallery", galleryHandler.Upload)
				admin.DELETE("/gallery/:id", galleryHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
