package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/filter"
	"room-booking-portal/internal/validate"
)

// GetVisitorRooms lists the rooms a visitor may browse, narrowed by
// search and type. Only available rooms are shown.
func (h *Handler) GetVisitorRooms(c *gin.Context) {
	list, err := h.fetchVisitorRooms(c)
	if err != nil {
		h.upstreamError(c, identityVisitor, err, "Failed to load rooms")
		return
	}

	filtered := filter.Rooms(list, filter.RoomQuery{
		Search:        c.Query("search"),
		RoomType:      c.Query("room_type"),
		AvailableOnly: true,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          filtered,
		"total":         len(filtered),
		"notifications": h.notifications(c),
	})
}

// GetRoomAvailability answers an availability pre-check for a booking
// window. The window is validated locally before the upstream is asked.
func (h *Handler) GetRoomAvailability(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	date := c.Query("date")
	start := c.Query("start_time")
	end := c.Query("end_time")
	switch {
	case !validate.Required(date):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Date is required"})
		return
	case !validate.TimeRange(start, end):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "End time must be after start time"})
		return
	}

	avail, err := h.visitor(c).RoomAvailability(c.Request.Context(), id, date, start, end)
	if err != nil {
		h.upstreamError(c, identityVisitor, err, "Failed to check availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": avail})
}
