package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/cache"
	"room-booking-portal/internal/filter"
	"room-booking-portal/internal/model"
	"room-booking-portal/internal/upstream"
	"room-booking-portal/internal/validate"
)

// bookingView decorates a booking with its status badge label.
type bookingView struct {
	model.Booking
	StatusLabel string `json:"status_label"`
}

func bookingViews(list []model.Booking) []bookingView {
	views := make([]bookingView, len(list))
	for i, b := range list {
		views[i] = bookingView{Booking: b, StatusLabel: b.StatusLabel()}
	}
	return views
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid id"})
		return 0, false
	}
	return id, true
}

// GetBookings lists all bookings, narrowed by the screen's search term
// and status selector.
func (h *Handler) GetBookings(c *gin.Context) {
	list, err := h.fetchBookings(c)
	if err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to load bookings")
		return
	}

	filtered := filter.Bookings(list, filter.BookingQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          bookingViews(filtered),
		"total":         len(filtered),
		"notifications": h.notifications(c),
	})
}

// ApproveBooking requests the pending→approved transition and marks the
// bookings collection stale.
func (h *Handler) ApproveBooking(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req confirmable
	_ = c.ShouldBindJSON(&req)
	if !requireConfirm(c, req.Confirm) {
		return
	}

	if err := h.admin(c).ApproveBooking(c.Request.Context(), id); err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to approve booking")
		return
	}

	h.cache.Invalidate(cache.KeyBookings)
	ok(c, "Booking approved successfully")
}

type rejectBookingRequest struct {
	confirmable
	Reason string `json:"reason"`
}

// RejectBooking requests the pending→rejected transition. A reason is
// mandatory and checked before any request is issued.
func (h *Handler) RejectBooking(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req rejectBookingRequest
	_ = c.ShouldBindJSON(&req)
	if !requireConfirm(c, req.Confirm) {
		return
	}
	if !validate.Required(req.Reason) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide a reason for rejection"})
		return
	}

	if err := h.admin(c).RejectBooking(c.Request.Context(), id, req.Reason); err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to reject booking")
		return
	}

	h.cache.Invalidate(cache.KeyBookings)
	ok(c, "Booking rejected successfully")
}

// CancelBooking cancels a booking on the visitor's behalf.
func (h *Handler) CancelBooking(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req confirmable
	_ = c.ShouldBindJSON(&req)
	if !requireConfirm(c, req.Confirm) {
		return
	}

	if err := h.admin(c).CancelBooking(c.Request.Context(), id); err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to cancel booking")
		return
	}

	h.cache.Invalidate(cache.KeyBookings)
	ok(c, "Booking cancelled successfully")
}

type updateBookingRequest struct {
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	Purpose           string  `json:"purpose"`
	Description       string  `json:"description"`
	ExpectedAttendees int     `json:"expected_attendees"`
	AdminNotes        *string `json:"admin_notes"`
}

// UpdateBooking edits a booking record.
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid booking payload"})
		return
	}

	err := h.admin(c).UpdateBooking(c.Request.Context(), id, upstream.BookingUpdate{
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Purpose:           req.Purpose,
		Description:       req.Description,
		ExpectedAttendees: req.ExpectedAttendees,
		AdminNotes:        req.AdminNotes,
	})
	if err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to update booking")
		return
	}

	h.cache.Invalidate(cache.KeyBookings)
	ok(c, "Booking updated successfully")
}

// DeleteBooking removes a booking record entirely.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if !requireConfirm(c, false) {
		return
	}

	if err := h.admin(c).DeleteBooking(c.Request.Context(), id); err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to delete booking")
		return
	}

	h.cache.Invalidate(cache.KeyBookings)
	ok(c, "Booking deleted successfully")
}
