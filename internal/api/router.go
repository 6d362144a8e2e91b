package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"room-booking-portal/config"
	"room-booking-portal/internal/cache"
	"room-booking-portal/internal/model"
	"room-booking-portal/internal/mw"
	"room-booking-portal/internal/session"
	"room-booking-portal/internal/upstream"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, store session.Store, staff *session.Staff, visitors *session.VisitorManager, up *upstream.Client) *gin.Engine {
	r := gin.Default()

	collections := cache.New(cfg.Server.CacheTTL)
	handler := NewHandler(store, staff, visitors, up, collections)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst, cfg.Server.RequestIPHeader)
	sessions := mw.SessionLoader(store, &cfg.Session)

	r.Use(rateLimiter, sessions)

	// Unknown entry point lands on the visitor side.
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, mw.VisitorLoginPath)
	})

	// Public staff routes
	r.GET("/login", handler.GetStaffLogin)
	r.POST("/login", handler.StaffLogin)
	r.POST("/logout", handler.StaffLogout)

	// Public visitor routes
	r.GET("/visitor/login", handler.GetVisitorLogin)
	r.POST("/visitor/login", handler.VisitorLogin)
	r.POST("/visitor/register", handler.VisitorRegister)
	r.POST("/visitor/logout", handler.VisitorLogout)

	// Staff screens: every request below re-verifies the stored token.
	admin := r.Group("/admin")
	admin.Use(mw.StaffGuard(staff, model.RoleAdmin, model.RoleSuperAdmin))
	{
		admin.GET("/dashboard", handler.GetDashboard)

		admin.GET("/bookings", handler.GetBookings)
		admin.PATCH("/bookings/:id/approve", handler.ApproveBooking)
		admin.PATCH("/bookings/:id/reject", handler.RejectBooking)
		admin.PATCH("/bookings/:id/cancel", handler.CancelBooking)
		admin.PUT("/bookings/:id", handler.UpdateBooking)
		admin.DELETE("/bookings/:id", handler.DeleteBooking)

		admin.GET("/rooms", handler.GetRooms)
		admin.POST("/rooms", handler.CreateRoom)
		admin.PUT("/rooms/:id", handler.UpdateRoom)
		admin.DELETE("/rooms/:id", handler.DeleteRoom)

		admin.GET("/users", handler.GetUsers)
		admin.PATCH("/users/:id/activate", handler.ActivateUser)
		admin.PATCH("/users/:id/deactivate", handler.DeactivateUser)

		admin.GET("/admins", handler.GetAdmins)
		admin.POST("/admins", handler.CreateAdmin)
		admin.PATCH("/admins/:id/activate", handler.ActivateAdmin)
		admin.PATCH("/admins/:id/deactivate", handler.DeactivateAdmin)
	}

	// Visitor screens: restoration is local, trust on reload.
	visitor := r.Group("/visitor")
	visitor.Use(mw.VisitorGuard(visitors))
	{
		visitor.GET("/rooms", handler.GetVisitorRooms)
		visitor.GET("/rooms/:id/availability", handler.GetRoomAvailability)

		visitor.GET("/bookings", handler.GetVisitorBookings)
		visitor.POST("/bookings", handler.CreateVisitorBooking)
		visitor.PATCH("/bookings/:id/cancel", handler.CancelVisitorBooking)

		visitor.GET("/profile", handler.GetVisitorProfile)
		visitor.PUT("/profile", handler.UpdateVisitorProfile)
	}

	return r
}
