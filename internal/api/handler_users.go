package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/cache"
	"room-booking-portal/internal/filter"
)

// GetUsers lists registered visitors, narrowed by search and the
// active/inactive selector.
func (h *Handler) GetUsers(c *gin.Context) {
	list, err := h.fetchUsers(c)
	if err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to load users")
		return
	}

	filtered := filter.Visitors(list, filter.VisitorQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          filtered,
		"total":         len(filtered),
		"notifications": h.notifications(c),
	})
}

// ActivateUser re-enables a visitor account.
func (h *Handler) ActivateUser(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req confirmable
	_ = c.ShouldBindJSON(&req)
	if !requireConfirm(c, req.Confirm) {
		return
	}

	if err := h.admin(c).ActivateVisitor(c.Request.Context(), id); err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to activate user")
		return
	}

	h.cache.Invalidate(cache.KeyUsers)
	ok(c, "User activated successfully")
}

// DeactivateUser disables a visitor account. The account keeps its
// history; only new logins and bookings are blocked upstream.
func (h *Handler) DeactivateUser(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req confirmable
	_ = c.ShouldBindJSON(&req)
	if !requireConfirm(c, req.Confirm) {
		return
	}

	if err := h.admin(c).DeactivateVisitor(c.Request.Context(), id); err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to deactivate user")
		return
	}

	h.cache.Invalidate(cache.KeyUsers)
	ok(c, "User deactivated successfully")
}
