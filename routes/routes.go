package routes

import (
	"net/http"
	"time"

	"fixel/handlers"
	"fixel/middleware"
	"fixel/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Guard         *auth.Guard
	Users         *handlers.UserHandler
	Bookings      *handlers.BookingHandler
	Technicians   *handlers.TechnicianHandler
	Services      *handlers.ServiceHandler
	Notifications *handlers.NotificationHandler
	Admin         *handlers.AdminHandler
}

// RegisterRoutes wires the whole /api/funcs surface. Every logical
// operation is one POST endpoint named <domain>.<action>.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Fixel"})
	})

	funcs := r.Group("/api/funcs")

	// Public endpoints.
	funcs.POST("/user.register", hb.Users.Register)
	funcs.POST("/user.login", hb.Users.Login)
	funcs.POST("/technician.login", hb.Technicians.Login)
	funcs.POST("/service.viewServices", hb.Services.ViewServices)

	// User-scoped endpoints.
	userScoped := funcs.Group("")
	userScoped.Use(middleware.AuthUserMiddleware(hb.Guard))
	userScoped.POST("/user.viewUser", hb.Users.ViewUser)
	userScoped.POST("/user.viewBookedServices", hb.Bookings.ViewBookedServices)
	userScoped.POST("/user.viewBooking", hb.Bookings.ViewBooking)
	userScoped.POST("/user.cancelBooking", hb.Bookings.CancelBooking)
	userScoped.POST("/service.bookService", hb.Bookings.BookService)
	userScoped.POST("/notification.viewNotifications", hb.Notifications.ViewNotifications)

	// Technician-scoped endpoints.
	techScoped := funcs.Group("")
	techScoped.Use(middleware.AuthTechnicianMiddleware(hb.Guard))
	techScoped.POST("/technician.acceptAssignment", hb.Technicians.AcceptAssignment)
	techScoped.POST("/technician.rejectAssignment", hb.Technicians.RejectAssignment)
	techScoped.POST("/technician.viewAssignedServices", hb.Technicians.ViewAssignedServices)
	techScoped.POST("/service.updateStatus", hb.Technicians.UpdateStatus)

	// Admin CRUD endpoints.
	admin := funcs.Group("")
	admin.Use(middleware.AdminAuthMiddleware())
	admin.POST("/admin.service.create", hb.Admin.CreateService)
	admin.POST("/admin.service.update", hb.Admin.UpdateService)
	admin.POST("/admin.service.delete", hb.Admin.DeleteService)
	admin.POST("/admin.subservice.create", hb.Admin.CreateSubService)
	admin.POST("/admin.subservice.delete", hb.Admin.DeleteSubService)
	admin.POST("/admin.technician.create", hb.Admin.CreateTechnician)
	admin.POST("/admin.technician.delete", hb.Admin.DeleteTechnician)
}
