// Package mw holds the gin middleware: session loading, the two route
// guards, and rate limiting.
package mw

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-portal/config"
	"room-booking-portal/internal/model"
	"room-booking-portal/internal/session"
)

// Context keys for state injected by the middleware chain.
const (
	ctxSession = "mw.session"
	ctxStaff   = "mw.staffState"
	ctxVisitor = "mw.visitorState"
)

// SessionLoader resolves the browser session from the cookie, creating
// a fresh record (and cookie) when none exists or the old one expired.
func SessionLoader(store session.Store, cfg *config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *model.Session

		if id, err := c.Cookie(cfg.CookieName); err == nil && id != "" {
			sess, err = store.Get(c.Request.Context(), id)
			if err != nil && !errors.Is(err, session.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session storage unavailable"})
				return
			}
		}

		if sess == nil {
			created, err := store.Create(c.Request.Context(), cfg.TTL)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session storage unavailable"})
				return
			}
			sess = created
			c.SetCookie(cfg.CookieName, sess.ID, int(cfg.TTL.Seconds()), "/", "", cfg.CookieSecure, true)
		}

		c.Set(ctxSession, sess)
		c.Next()
	}
}

// Session returns the session record injected by SessionLoader.
func Session(c *gin.Context) *model.Session {
	return c.MustGet(ctxSession).(*model.Session)
}

// Staff returns the staff state injected by StaffGuard.
func Staff(c *gin.Context) session.StaffState {
	return c.MustGet(ctxStaff).(session.StaffState)
}

// Visitor returns the visitor state injected by VisitorGuard.
func Visitor(c *gin.Context) session.VisitorState {
	return c.MustGet(ctxVisitor).(session.VisitorState)
}
