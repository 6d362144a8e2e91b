package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/cache"
	"room-booking-portal/internal/model"
	"room-booking-portal/internal/mw"
	"room-booking-portal/internal/session"
	"room-booking-portal/internal/upstream"
)

// Identity kinds, for scoping the unauthorized handling to the identity
// that made the failing call.
const (
	identityStaff   = "staff"
	identityVisitor = "visitor"
)

// Handler holds shared dependencies for the portal handlers.
type Handler struct {
	store    session.Store
	staff    *session.Staff
	visitors *session.VisitorManager
	upstream *upstream.Client
	cache    *cache.Collections
}

// NewHandler creates a new portal handler.
func NewHandler(store session.Store, staff *session.Staff, visitors *session.VisitorManager, up *upstream.Client, collections *cache.Collections) *Handler {
	return &Handler{
		store:    store,
		staff:    staff,
		visitors: visitors,
		upstream: up,
		cache:    collections,
	}
}

// admin returns the staff API bound to this session's stored token.
func (h *Handler) admin(c *gin.Context) *upstream.AdminAPI {
	return h.upstream.Admin(mw.Session(c).AdminToken)
}

// visitor returns the visitor API bound to this session's stored token.
func (h *Handler) visitor(c *gin.Context) *upstream.VisitorAPI {
	return h.upstream.Visitor(mw.Session(c).VisitorToken)
}

// upstreamError is the single place that owns the reaction to a failed
// upstream call. A 401 purges the credentials of the identity kind that
// made the call and redirects to its login route; everything else is
// surfaced as an inline error, leaving the screen's prior state intact.
func (h *Handler) upstreamError(c *gin.Context, identity string, err error, fallback string) {
	ctx := c.Request.Context()
	sess := mw.Session(c)

	if errors.Is(err, upstream.ErrUnauthorized) {
		switch identity {
		case identityVisitor:
			if purgeErr := h.visitors.PurgeVisitor(ctx, sess); purgeErr != nil {
				log.Printf("failed to purge visitor credentials: %v", purgeErr)
			}
			c.Redirect(http.StatusFound, mw.VisitorLoginPath)
		default:
			if purgeErr := h.staff.Logout(ctx, sess); purgeErr != nil {
				log.Printf("failed to purge staff credentials: %v", purgeErr)
			}
			c.Redirect(http.StatusFound, mw.StaffLoginPath)
		}
		c.Abort()
		return
	}

	status := http.StatusBadGateway
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	c.JSON(status, gin.H{"success": false, "message": upstream.UserMessage(err, fallback)})
}

// notifications drains and persists the session's queued flashes for
// inclusion in a screen response.
func (h *Handler) notifications(c *gin.Context) []model.Flash {
	sess := mw.Session(c)
	flashes := session.ConsumeFlashes(sess)
	if len(flashes) > 0 {
		if err := h.store.Save(c.Request.Context(), sess); err != nil {
			log.Printf("failed to persist consumed flashes: %v", err)
		}
	}
	return flashes
}

// confirmable is embedded in mutation request bodies whose action is
// destructive or state-changing and therefore needs an explicit
// confirmation before any upstream request is issued.
type confirmable struct {
	Confirm bool `json:"confirm"`
}

// requireConfirm enforces the confirmation step. It accepts either the
// bound body field or a confirm=true query parameter (for bodyless
// DELETE calls) and rejects the action otherwise.
func requireConfirm(c *gin.Context, bodyConfirmed bool) bool {
	if bodyConfirmed || c.Query("confirm") == "true" {
		return true
	}
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Confirmation required"})
	return false
}

// ok writes the standard success body for a mutation.
func ok(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
