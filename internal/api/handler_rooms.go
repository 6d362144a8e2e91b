package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/cache"
	"room-booking-portal/internal/filter"
	"room-booking-portal/internal/upstream"
	"room-booking-portal/internal/validate"
)

// GetRooms lists the room inventory, narrowed by search, type and
// availability selectors.
func (h *Handler) GetRooms(c *gin.Context) {
	list, err := h.fetchRooms(c)
	if err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to load rooms")
		return
	}

	filtered := filter.Rooms(list, filter.RoomQuery{
		Search:        c.Query("search"),
		RoomType:      c.Query("room_type"),
		AvailableOnly: c.Query("available") == "true",
	})

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          filtered,
		"total":         len(filtered),
		"notifications": h.notifications(c),
	})
}

type roomRequest struct {
	RoomNumber       string   `json:"room_number"`
	RoomName         string   `json:"room_name"`
	Description      string   `json:"description"`
	Capacity         int      `json:"capacity"`
	Location         string   `json:"location"`
	Building         string   `json:"building"`
	Floor            string   `json:"floor"`
	RoomType         string   `json:"room_type"`
	Amenities        []string `json:"amenities"`
	HourlyRate       float64  `json:"hourly_rate"`
	IsAvailable      bool     `json:"is_available"`
	RequiresApproval bool     `json:"requires_approval"`
	ImageURL         string   `json:"image_url"`
}

// validateRoom applies the room form rules before any request is issued.
func validateRoom(c *gin.Context, req roomRequest) bool {
	switch {
	case !validate.Required(req.RoomNumber):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Room number is required"})
	case !validate.Required(req.RoomName):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Room name is required"})
	case req.Capacity <= 0:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Capacity must be a positive number"})
	default:
		return true
	}
	return false
}

// payload coerces the form into the shape the upstream endpoints expect:
// boolean flags are carried as 0/1 and an empty image URL is omitted
// rather than sent blank.
func (r roomRequest) payload() upstream.RoomPayload {
	p := upstream.RoomPayload{
		RoomNumber:  r.RoomNumber,
		RoomName:    r.RoomName,
		Description: r.Description,
		Capacity:    r.Capacity,
		Location:    r.Location,
		Building:    r.Building,
		Floor:       r.Floor,
		RoomType:    r.RoomType,
		Amenities:   r.Amenities,
		HourlyRate:  r.HourlyRate,
	}
	if r.IsAvailable {
		p.IsAvailable = 1
	}
	if r.RequiresApproval {
		p.RequiresApproval = 1
	}
	if r.ImageURL != "" {
		p.ImageURL = &r.ImageURL
	}
	return p
}

// CreateRoom adds a room to the inventory.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid room payload"})
		return
	}
	if !validateRoom(c, req) {
		return
	}

	room, err := h.admin(c).CreateRoom(c.Request.Context(), req.payload())
	if err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to create room")
		return
	}

	h.cache.Invalidate(cache.KeyRooms)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Room created successfully", "data": room})
}

// UpdateRoom replaces a room record.
func (h *Handler) UpdateRoom(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid room payload"})
		return
	}
	if !validateRoom(c, req) {
		return
	}

	if err := h.admin(c).UpdateRoom(c.Request.Context(), id, req.payload()); err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to update room")
		return
	}

	h.cache.Invalidate(cache.KeyRooms)
	ok(c, "Room updated successfully")
}

// DeleteRoom removes a room from the inventory.
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if !requireConfirm(c, false) {
		return
	}

	if err := h.admin(c).DeleteRoom(c.Request.Context(), id); err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to delete room")
		return
	}

	h.cache.Invalidate(cache.KeyRooms)
	ok(c, "Room deleted successfully")
}
