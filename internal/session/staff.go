package session

import (
	"context"
	"errors"
	"log"

	"room-booking-portal/internal/model"
	"room-booking-portal/internal/upstream"
)

// StaffState is the staff half of a session after restoration.
type StaffState struct {
	User          model.Admin
	Role          string
	Authenticated bool
}

// LoginResult is what a login screen gets back. Failures carry a
// user-facing message; they are never surfaced as errors.
type LoginResult struct {
	Success bool
	Message string
}

// Staff manages the staff session lifecycle. Its restore strategy is
// eager re-verify: a stored token is worthless until the upstream
// profile call accepts it again.
type Staff struct {
	store Store
	api   *upstream.Client
}

// NewStaff creates the staff session manager.
func NewStaff(store Store, api *upstream.Client) *Staff {
	return &Staff{store: store, api: api}
}

// Login authenticates against the upstream and, on success, stores the
// token and populates the identity from the login payload itself,
// without a second round trip.
func (s *Staff) Login(ctx context.Context, sess *model.Session, email, password string) (StaffState, LoginResult) {
	result, err := s.api.Admin("").Login(ctx, email, password)
	if err != nil {
		log.Printf("staff login failed for %s: %v", email, err)
		return StaffState{}, LoginResult{Success: false, Message: upstream.UserMessage(err, "Login failed")}
	}

	sess.AdminToken = result.Token
	if err := s.store.Save(ctx, sess); err != nil {
		return StaffState{}, LoginResult{Success: false, Message: "Login failed"}
	}

	state := StaffState{User: result.Admin, Role: result.Admin.Role, Authenticated: true}
	return state, LoginResult{Success: true}
}

// Restore re-validates the stored token against the upstream profile
// endpoint. Any verification failure clears the stored token and leaves
// the session unauthenticated; a missing token short-circuits without a
// network call.
func (s *Staff) Restore(ctx context.Context, sess *model.Session) (StaffState, error) {
	if sess.AdminToken == "" {
		return StaffState{}, nil
	}

	admin, err := s.api.Admin(sess.AdminToken).Profile(ctx)
	if err != nil {
		if !errors.Is(err, upstream.ErrUnauthorized) {
			log.Printf("staff session verification failed: %v", err)
		}
		sess.AdminToken = ""
		if saveErr := s.store.Save(ctx, sess); saveErr != nil {
			return StaffState{}, saveErr
		}
		return StaffState{}, nil
	}

	return StaffState{User: admin, Role: admin.Role, Authenticated: true}, nil
}

// Logout discards the staff credentials. The upstream is not told.
func (s *Staff) Logout(ctx context.Context, sess *model.Session) error {
	sess.AdminToken = ""
	return s.store.Save(ctx, sess)
}
