package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/mw"
	"room-booking-portal/internal/upstream"
	"room-booking-portal/internal/validate"
)

// GetVisitorProfile serves the profile screen from the session snapshot.
// No upstream call: the snapshot is the last-known-good record and every
// write path refreshes it.
func (h *Handler) GetVisitorProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          mw.Visitor(c).Visitor,
		"notifications": h.notifications(c),
	})
}

type updateProfileRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	StudentID  string `json:"student_id"`
}

// UpdateVisitorProfile edits the profile upstream and re-persists the
// session snapshot so later restorations see the edit.
func (h *Handler) UpdateVisitorProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid profile payload"})
		return
	}

	var message string
	switch {
	case !validate.Required(req.FirstName):
		message = "First name is required"
	case !validate.Required(req.LastName):
		message = "Last name is required"
	case req.Phone != "" && !validate.Phone(req.Phone):
		message = "Please enter a valid phone number"
	}
	if message != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
		return
	}

	visitor, err := h.visitor(c).UpdateProfile(c.Request.Context(), upstream.ProfileUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Department: req.Department,
		StudentID:  req.StudentID,
	})
	if err != nil {
		h.upstreamError(c, identityVisitor, err, "Failed to update profile")
		return
	}

	if err := h.visitors.UpdateVisitorData(c.Request.Context(), mw.Session(c), visitor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"data":    visitor,
	})
}
