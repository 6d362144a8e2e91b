package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"room-booking-portal/internal/model"
)

// AdminAPI wraps the staff-facing endpoints of the booking API, bound
// to one bearer token.
type AdminAPI struct {
	c     *Client
	token string
}

// AdminLoginResult carries both halves of a successful staff login, so
// the session can be populated without a second round trip.
type AdminLoginResult struct {
	Token string      `json:"token"`
	Admin model.Admin `json:"admin"`
}

// Login authenticates a staff member. The login endpoint reports the
// token and identity beside the envelope rather than under data.
func (a *AdminAPI) Login(ctx context.Context, email, password string) (AdminLoginResult, error) {
	env, err := a.c.do(ctx, http.MethodPost, "/admin/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return AdminLoginResult{}, err
	}

	var result AdminLoginResult
	if err := json.Unmarshal(env.raw, &result); err != nil {
		return AdminLoginResult{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	if result.Token == "" {
		return AdminLoginResult{}, &APIError{Status: http.StatusOK, Message: env.errorMessage()}
	}
	return result, nil
}

// Profile fetches the identity behind the bound token, verifying the
// token is still accepted upstream.
func (a *AdminAPI) Profile(ctx context.Context) (model.Admin, error) {
	var admin model.Admin
	if err := a.c.get(ctx, "/admin/profile", a.token, &admin); err != nil {
		return model.Admin{}, err
	}
	return admin, nil
}

// RoomPayload is the form shape the room create/update endpoints expect.
type RoomPayload struct {
	RoomNumber       string   `json:"room_number"`
	RoomName         string   `json:"room_name"`
	Description      string   `json:"description"`
	Capacity         int      `json:"capacity"`
	Location         string   `json:"location"`
	Building         string   `json:"building"`
	Floor            string   `json:"floor"`
	RoomType         string   `json:"room_type"`
	Amenities        []string `json:"amenities"`
	HourlyRate       float64  `json:"hourly_rate"`
	IsAvailable      int      `json:"is_available"`
	RequiresApproval int      `json:"requires_approval"`
	ImageURL         *string  `json:"image_url"`
}

// Rooms lists the full room inventory.
func (a *AdminAPI) Rooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := a.c.get(ctx, "/admin/rooms", a.token, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom adds a room to the inventory.
func (a *AdminAPI) CreateRoom(ctx context.Context, payload RoomPayload) (model.Room, error) {
	env, err := a.c.do(ctx, http.MethodPost, "/admin/rooms", a.token, payload)
	if err != nil {
		return model.Room{}, err
	}
	var room model.Room
	if err := decodeData(env, &room); err != nil {
		return model.Room{}, err
	}
	return room, nil
}

// UpdateRoom replaces a room record.
func (a *AdminAPI) UpdateRoom(ctx context.Context, id int64, payload RoomPayload) error {
	_, err := a.c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/rooms/%d", id), a.token, payload)
	return err
}

// DeleteRoom removes a room from the inventory.
func (a *AdminAPI) DeleteRoom(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/rooms/%d", id), a.token, nil)
	return err
}

// Bookings lists all bookings across visitors.
func (a *AdminAPI) Bookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := a.c.get(ctx, "/admin/bookings", a.token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ApproveBooking requests the pending→confirmed transition.
func (a *AdminAPI) ApproveBooking(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/bookings/%d/approve", id), a.token, nil)
	return err
}

// RejectBooking requests the pending→rejected transition with a reason.
func (a *AdminAPI) RejectBooking(ctx context.Context, id int64, reason string) error {
	_, err := a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/bookings/%d/reject", id), a.token, map[string]string{"reason": reason})
	return err
}

// CancelBooking requests cancellation of a booking on the visitor's behalf.
func (a *AdminAPI) CancelBooking(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/bookings/%d/cancel", id), a.token, nil)
	return err
}

// BookingUpdate is the mutable subset of a booking record.
type BookingUpdate struct {
	StartTime         string  `json:"start_time,omitempty"`
	EndTime           string  `json:"end_time,omitempty"`
	Purpose           string  `json:"purpose,omitempty"`
	Description       string  `json:"description,omitempty"`
	ExpectedAttendees int     `json:"expected_attendees,omitempty"`
	AdminNotes        *string `json:"admin_notes,omitempty"`
}

// UpdateBooking edits a booking record.
func (a *AdminAPI) UpdateBooking(ctx context.Context, id int64, payload BookingUpdate) error {
	_, err := a.c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/bookings/%d", id), a.token, payload)
	return err
}

// DeleteBooking removes a booking record entirely.
func (a *AdminAPI) DeleteBooking(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/bookings/%d", id), a.token, nil)
	return err
}

// Admins lists all staff accounts.
func (a *AdminAPI) Admins(ctx context.Context) ([]model.AdminAccount, error) {
	var admins []model.AdminAccount
	if err := a.c.get(ctx, "/admin/admins", a.token, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// AdminPayload is the admin-creation form shape.
type AdminPayload struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// CreateAdmin registers a new staff account. Super-admin only upstream.
func (a *AdminAPI) CreateAdmin(ctx context.Context, payload AdminPayload) error {
	_, err := a.c.do(ctx, http.MethodPost, "/admin/register", a.token, payload)
	return err
}

// ActivateAdmin re-enables a staff account.
func (a *AdminAPI) ActivateAdmin(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/admins/%d/activate", id), a.token, nil)
	return err
}

// DeactivateAdmin disables a staff account.
func (a *AdminAPI) DeactivateAdmin(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/admins/%d/deactivate", id), a.token, nil)
	return err
}

// Visitors lists all registered visitors.
func (a *AdminAPI) Visitors(ctx context.Context) ([]model.Visitor, error) {
	var visitors []model.Visitor
	if err := a.c.get(ctx, "/admin/visitors", a.token, &visitors); err != nil {
		return nil, err
	}
	return visitors, nil
}

// ActivateVisitor re-enables a visitor account.
func (a *AdminAPI) ActivateVisitor(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/visitors/%d/activate", id), a.token, nil)
	return err
}

// DeactivateVisitor disables a visitor account.
func (a *AdminAPI) DeactivateVisitor(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/visitors/%d/deactivate", id), a.token, nil)
	return err
}
