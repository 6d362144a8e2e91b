package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/mw"
	"room-booking-portal/internal/validate"
)

type staffLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GetStaffLogin is the landing point for staff guard redirects. It only
// reports pending notifications; rendering is the front-end's concern.
func (h *Handler) GetStaffLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.notifications(c)})
}

// StaffLogin authenticates a staff member and binds the token to the
// browser session.
func (h *Handler) StaffLogin(c *gin.Context) {
	var req staffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	if !validate.Email(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please enter a valid email address"})
		return
	}

	state, result := h.staff.Login(c.Request.Context(), mw.Session(c), req.Email, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": result.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    state.User.ID,
			"name":  state.User.Name(),
			"email": state.User.Email,
			"role":  state.Role,
		},
	})
}

// StaffLogout clears the staff credentials and sends the browser back
// to the staff login route. The upstream is not called.
func (h *Handler) StaffLogout(c *gin.Context) {
	if err := h.staff.Logout(c.Request.Context(), mw.Session(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Logout failed"})
		return
	}
	c.Redirect(http.StatusFound, mw.StaffLoginPath)
}
