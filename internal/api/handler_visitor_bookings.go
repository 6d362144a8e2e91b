package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/cache"
	"room-booking-portal/internal/mw"
	"room-booking-portal/internal/upstream"
	"room-booking-portal/internal/validate"
)

// GetVisitorBookings lists the visitor's bookings. The tab query picks
// between the active list and the history list; each is cached under
// its own per-session key.
func (h *Handler) GetVisitorBookings(c *gin.Context) {
	history := c.Query("tab") == "history"

	list, err := h.fetchVisitorBookings(c, history)
	if err != nil {
		h.upstreamError(c, identityVisitor, err, "Failed to load bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          bookingViews(list),
		"total":         len(list),
		"notifications": h.notifications(c),
	})
}

type createBookingRequest struct {
	RoomID            int64  `json:"room_id"`
	BookingDate       string `json:"booking_date"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Purpose           string `json:"purpose"`
	Description       string `json:"description"`
	ExpectedAttendees int    `json:"expected_attendees"`
}

// CreateVisitorBooking submits a new booking request. The form rules
// run first, so an invalid window never costs a network round trip.
// The availability pre-check is advisory: a definite "taken" answer
// blocks the submission, but a failed pre-check call does not, since
// the upstream re-validates on create anyway.
func (h *Handler) CreateVisitorBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid booking payload"})
		return
	}

	bookingDay, dateErr := time.Parse("2006-01-02", req.BookingDate)

	var message string
	switch {
	case req.RoomID <= 0:
		message = "Please select a room"
	case !validate.Required(req.BookingDate):
		message = "Booking date is required"
	case dateErr != nil:
		message = "Booking date is invalid"
	// The whole booking day counts as future until it has passed.
	case !validate.FutureDate(bookingDay.AddDate(0, 0, 1), time.Now()):
		message = "Booking date cannot be in the past"
	case !validate.TimeRange(req.StartTime, req.EndTime):
		message = "End time must be after start time"
	case !validate.Required(req.Purpose):
		message = "Purpose is required"
	}
	if message != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
		return
	}

	ctx := c.Request.Context()
	api := h.visitor(c)

	avail, err := api.RoomAvailability(ctx, req.RoomID, req.BookingDate, req.StartTime, req.EndTime)
	if err != nil {
		log.Printf("availability pre-check failed for room %d: %v", req.RoomID, err)
	} else if !avail.Available {
		msg := avail.Message
		if msg == "" {
			msg = "Room is not available for the selected time"
		}
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": msg})
		return
	}

	booking, err := api.CreateBooking(ctx, upstream.BookingPayload{
		RoomID:            req.RoomID,
		BookingDate:       req.BookingDate,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Purpose:           req.Purpose,
		Description:       req.Description,
		ExpectedAttendees: req.ExpectedAttendees,
	})
	if err != nil {
		h.upstreamError(c, identityVisitor, err, "Failed to create booking")
		return
	}

	h.cache.InvalidateScoped(mw.Session(c).ID, cache.KeyVisitorBookings, cache.KeyVisitorHistory)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking request submitted successfully!",
		"data":    bookingView{Booking: booking, StatusLabel: booking.StatusLabel()},
	})
}

// CancelVisitorBooking cancels one of the visitor's own bookings.
func (h *Handler) CancelVisitorBooking(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req confirmable
	_ = c.ShouldBindJSON(&req)
	if !requireConfirm(c, req.Confirm) {
		return
	}

	if err := h.visitor(c).CancelBooking(c.Request.Context(), id); err != nil {
		h.upstreamError(c, identityVisitor, err, "Failed to cancel booking")
		return
	}

	h.cache.InvalidateScoped(mw.Session(c).ID, cache.KeyVisitorBookings, cache.KeyVisitorHistory)
	ok(c, "Booking cancelled successfully")
}
