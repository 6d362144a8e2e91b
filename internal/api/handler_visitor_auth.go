package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/mw"
	"room-booking-portal/internal/upstream"
	"room-booking-portal/internal/validate"
)

// GetVisitorLogin serves the visitor login screen state: just the
// queued notifications (logout and registration confirmations land here).
func (h *Handler) GetVisitorLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": h.notifications(c),
	})
}

type visitorLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VisitorLogin authenticates a visitor and binds the credentials to the
// session.
func (h *Handler) VisitorLogin(c *gin.Context) {
	var req visitorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid login payload"})
		return
	}
	if !validate.Email(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please enter a valid email address"})
		return
	}
	if !validate.Required(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password is required"})
		return
	}

	sess := mw.Session(c)
	state, result := h.visitors.Login(c.Request.Context(), sess, req.Email, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": result.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    state.Visitor,
	})
}

type visitorRegisterRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	StudentID  string `json:"student_id"`
	UserType   string `json:"user_type"`
}

// VisitorRegister creates a visitor account. The form rules run before
// any upstream request; registration never logs the visitor in.
func (h *Handler) VisitorRegister(c *gin.Context) {
	var req visitorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid registration payload"})
		return
	}

	var message string
	switch {
	case !validate.Required(req.FirstName):
		message = "First name is required"
	case !validate.Required(req.LastName):
		message = "Last name is required"
	case !validate.Email(req.Email):
		message = "Please enter a valid email address"
	case !validate.Password(req.Password).Valid:
		message = "Password must be at least 6 characters long"
	case req.Phone != "" && !validate.Phone(req.Phone):
		message = "Please enter a valid phone number"
	}
	if message != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
		return
	}

	sess := mw.Session(c)
	visitor, result := h.visitors.Register(c.Request.Context(), sess, upstream.RegisterPayload{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Department: req.Department,
		StudentID:  req.StudentID,
		UserType:   req.UserType,
	})
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": result.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration successful! Please login.",
		"data":    visitor,
	})
}

// VisitorLogout discards the visitor credentials and sends the browser
// back to the visitor login route.
func (h *Handler) VisitorLogout(c *gin.Context) {
	if err := h.visitors.Logout(c.Request.Context(), mw.Session(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Logout failed"})
		return
	}
	c.Redirect(http.StatusFound, mw.VisitorLoginPath)
}
