package session

import (
	"context"
	"encoding/json"
	"log"

	"room-booking-portal/internal/model"
	"room-booking-portal/internal/upstream"
)

// VisitorState is the visitor half of a session after restoration.
type VisitorState struct {
	Visitor       model.Visitor
	Token         string
	Authenticated bool
}

// VisitorManager manages the visitor session lifecycle. Its restore
// strategy is trust-on-reload: the last-known-good profile snapshot is
// rehydrated without a network call and trusted until the next write
// or 401.
type VisitorManager struct {
	store Store
	api   *upstream.Client
}

// NewVisitor creates the visitor session manager.
func NewVisitor(store Store, api *upstream.Client) *VisitorManager {
	return &VisitorManager{store: store, api: api}
}

// Restore rehydrates the visitor state from the session record. Partial
// state (a token without a snapshot, or the reverse) is never treated
// as authenticated.
func (m *VisitorManager) Restore(sess *model.Session) VisitorState {
	if sess.VisitorToken == "" || len(sess.VisitorUser) == 0 {
		return VisitorState{}
	}

	var visitor model.Visitor
	if err := json.Unmarshal(sess.VisitorUser, &visitor); err != nil {
		log.Printf("discarding corrupt visitor snapshot for session %s: %v", sess.ID, err)
		return VisitorState{}
	}

	return VisitorState{Visitor: visitor, Token: sess.VisitorToken, Authenticated: true}
}

// Login authenticates against the upstream and persists both the token
// and the profile snapshot. Success and failure both queue a transient
// notification; the caller only sees the result object.
func (m *VisitorManager) Login(ctx context.Context, sess *model.Session, email, password string) (VisitorState, LoginResult) {
	result, err := m.api.Visitor("").Login(ctx, email, password)
	if err != nil {
		msg := upstream.UserMessage(err, "Login failed")
		AddFlash(sess, "error", msg)
		if saveErr := m.store.Save(ctx, sess); saveErr != nil {
			log.Printf("failed to persist visitor login failure flash: %v", saveErr)
		}
		return VisitorState{}, LoginResult{Success: false, Message: msg}
	}

	snapshot, err := json.Marshal(result.Visitor)
	if err != nil {
		return VisitorState{}, LoginResult{Success: false, Message: "Login failed"}
	}

	sess.VisitorToken = result.Token
	sess.VisitorUser = snapshot
	AddFlash(sess, "success", "Login successful!")
	if err := m.store.Save(ctx, sess); err != nil {
		return VisitorState{}, LoginResult{Success: false, Message: "Login failed"}
	}

	return VisitorState{Visitor: result.Visitor, Token: result.Token, Authenticated: true}, LoginResult{Success: true}
}

// Register creates a visitor account. Registration does not log the
// visitor in; they are asked to log in afterwards.
func (m *VisitorManager) Register(ctx context.Context, sess *model.Session, payload upstream.RegisterPayload) (model.Visitor, LoginResult) {
	visitor, err := m.api.Visitor("").Register(ctx, payload)
	if err != nil {
		msg := upstream.UserMessage(err, "Registration failed")
		AddFlash(sess, "error", msg)
		if saveErr := m.store.Save(ctx, sess); saveErr != nil {
			log.Printf("failed to persist visitor registration flash: %v", saveErr)
		}
		return model.Visitor{}, LoginResult{Success: false, Message: msg}
	}

	AddFlash(sess, "success", "Registration successful! Please login.")
	if err := m.store.Save(ctx, sess); err != nil {
		log.Printf("failed to persist visitor registration flash: %v", err)
	}
	return visitor, LoginResult{Success: true}
}

// Logout discards the visitor credentials and snapshot.
func (m *VisitorManager) Logout(ctx context.Context, sess *model.Session) error {
	sess.VisitorToken = ""
	sess.VisitorUser = nil
	AddFlash(sess, "success", "Logged out successfully")
	return m.store.Save(ctx, sess)
}

// UpdateVisitorData is the sole path for profile edits to reach the
// session snapshot. It re-persists the snapshot so later restorations
// see the edit.
func (m *VisitorManager) UpdateVisitorData(ctx context.Context, sess *model.Session, visitor model.Visitor) error {
	snapshot, err := json.Marshal(visitor)
	if err != nil {
		return err
	}
	sess.VisitorUser = snapshot
	return m.store.Save(ctx, sess)
}

// PurgeVisitor removes both the token and the snapshot. It backs the
// portal's unauthorized handling for visitor calls.
func (m *VisitorManager) PurgeVisitor(ctx context.Context, sess *model.Session) error {
	sess.VisitorToken = ""
	sess.VisitorUser = nil
	return m.store.Save(ctx, sess)
}
