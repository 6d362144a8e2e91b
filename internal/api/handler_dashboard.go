package api

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/model"
)

// dashboardStats is the aggregate the dashboard screen shows. It is
// derived locally from the three collections, not from a dedicated
// upstream endpoint.
type dashboardStats struct {
	TotalBookings     int             `json:"total_bookings"`
	PendingBookings   int             `json:"pending_bookings"`
	ConfirmedBookings int             `json:"confirmed_bookings"`
	TotalRooms        int             `json:"total_rooms"`
	TotalUsers        int             `json:"total_users"`
	RecentBookings    []model.Booking `json:"recent_bookings"`
}

// GetDashboard aggregates bookings, rooms, and users. The three fetches
// resolve independently; the aggregate is only assembled once all three
// have succeeded, so a half-loaded view is never produced.
func (h *Handler) GetDashboard(c *gin.Context) {
	bookings, err := h.fetchBookings(c)
	if err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to load bookings")
		return
	}
	rooms, err := h.fetchRooms(c)
	if err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to load rooms")
		return
	}
	users, err := h.fetchUsers(c)
	if err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to load users")
		return
	}

	stats := dashboardStats{
		TotalBookings: len(bookings),
		TotalRooms:    len(rooms),
		TotalUsers:    len(users),
	}
	for _, b := range bookings {
		switch b.Status {
		case model.BookingPending:
			stats.PendingBookings++
		case model.BookingConfirmed:
			stats.ConfirmedBookings++
		}
	}

	recent := make([]model.Booking, len(bookings))
	copy(recent, bookings)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentBookings = recent

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          stats,
		"notifications": h.notifications(c),
	})
}
