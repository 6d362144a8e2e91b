package mw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/session"
)

// Login routes the guards redirect to.
const (
	StaffLoginPath   = "/login"
	VisitorLoginPath = "/visitor/login"
)

// StaffGuard gates a staff subtree. Restoration re-verifies the stored
// token upstream before anything below the guard runs, so protected
// payloads are never produced from unresolved state. Unauthenticated
// requests, and authenticated ones whose role is
// not in allowedRoles, are redirected to the staff login route.
func StaffGuard(staff *session.Staff, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Session(c)

		state, err := staff.Restore(c.Request.Context(), sess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session storage unavailable"})
			return
		}

		if !state.Authenticated || !roleAllowed(state.Role, allowedRoles) {
			c.Redirect(http.StatusFound, StaffLoginPath)
			c.Abort()
			return
		}

		c.Set(ctxStaff, state)
		c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// VisitorGuard gates a visitor subtree. Restoration is local (trust on
// reload); unauthenticated requests are redirected to the visitor login
// route.
func VisitorGuard(visitors *session.VisitorManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Session(c)

		state := visitors.Restore(sess)
		if !state.Authenticated {
			c.Redirect(http.StatusFound, VisitorLoginPath)
			c.Abort()
			return
		}

		c.Set(ctxVisitor, state)
		c.Next()
	}
}
