package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/cache"
	"room-booking-portal/internal/filter"
	"room-booking-portal/internal/model"
	"room-booking-portal/internal/mw"
	"room-booking-portal/internal/upstream"
	"room-booking-portal/internal/validate"
)

// requireSuperAdmin gates the admin-management screen. Regular admins
// get an access-denied response instead of a redirect: they are logged
// in, just not allowed here.
func requireSuperAdmin(c *gin.Context) bool {
	if mw.Staff(c).User.IsSuperAdmin() {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied. Super admin privileges required."})
	return false
}

// adminAccountView adds the per-row deactivation affordance: an admin
// can never deactivate their own account.
type adminAccountView struct {
	model.AdminAccount
	CanDeactivate bool `json:"can_deactivate"`
}

// GetAdmins lists staff accounts, narrowed by search, role and status.
func (h *Handler) GetAdmins(c *gin.Context) {
	if !requireSuperAdmin(c) {
		return
	}

	list, err := h.fetchAdmins(c)
	if err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to load admins")
		return
	}

	filtered := filter.Admins(list, filter.AdminQuery{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Status: c.Query("status"),
	})

	self := mw.Staff(c).User.ID
	views := make([]adminAccountView, len(filtered))
	for i, a := range filtered {
		views[i] = adminAccountView{AdminAccount: a, CanDeactivate: a.ID != self}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          views,
		"total":         len(views),
		"notifications": h.notifications(c),
	})
}

type createAdminRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// CreateAdmin registers a new staff account. Every form rule runs
// before the upstream request: an invalid form never costs a network
// round trip.
func (h *Handler) CreateAdmin(c *gin.Context) {
	if !requireSuperAdmin(c) {
		return
	}

	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid admin payload"})
		return
	}

	req.Username = validate.NormalizeUsername(req.Username)

	var message string
	switch {
	case !validate.Username(req.Username) || !validate.MinLength(req.Username, 3) || !validate.MaxLength(req.Username, 20):
		message = "Username must be 3-20 characters (letters, numbers, underscores only)"
	case !validate.Email(req.Email):
		message = "Please enter a valid email address"
	case !validate.Password(req.Password).Valid:
		message = "Password must be at least 6 characters long"
	case !validate.Required(req.FirstName):
		message = "First name is required"
	case !validate.Required(req.LastName):
		message = "Last name is required"
	case req.Phone != "" && !validate.Phone(req.Phone):
		message = "Please enter a valid phone number"
	case req.Role != model.RoleAdmin && req.Role != model.RoleSuperAdmin:
		message = "Role must be admin or super_admin"
	}
	if message != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
		return
	}

	err := h.admin(c).CreateAdmin(c.Request.Context(), upstream.AdminPayload{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
	})
	if err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to create admin")
		return
	}

	h.cache.Invalidate(cache.KeyAdmins)
	ok(c, "Admin created successfully")
}

// ActivateAdmin re-enables a staff account.
func (h *Handler) ActivateAdmin(c *gin.Context) {
	if !requireSuperAdmin(c) {
		return
	}
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req confirmable
	_ = c.ShouldBindJSON(&req)
	if !requireConfirm(c, req.Confirm) {
		return
	}

	if err := h.admin(c).ActivateAdmin(c.Request.Context(), id); err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to activate admin")
		return
	}

	h.cache.Invalidate(cache.KeyAdmins)
	ok(c, "Admin activated successfully")
}

// DeactivateAdmin disables a staff account. Deactivating yourself is
// refused outright, before any upstream call.
func (h *Handler) DeactivateAdmin(c *gin.Context) {
	if !requireSuperAdmin(c) {
		return
	}
	id, valid := pathID(c)
	if !valid {
		return
	}
	if id == mw.Staff(c).User.ID {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You cannot deactivate your own account"})
		return
	}
	var req confirmable
	_ = c.ShouldBindJSON(&req)
	if !requireConfirm(c, req.Confirm) {
		return
	}

	if err := h.admin(c).DeactivateAdmin(c.Request.Context(), id); err != nil {
		h.upstreamError(c, identityStaff, err, "Failed to deactivate admin")
		return
	}

	h.cache.Invalidate(cache.KeyAdmins)
	ok(c, "Admin deactivated successfully")
}
