package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"room-booking-portal/internal/model"
)

// VisitorAPI wraps the visitor-facing endpoints of the booking API,
// bound to one bearer token.
type VisitorAPI struct {
	c     *Client
	token string
}

// RegisterPayload is the self-service registration form shape.
type RegisterPayload struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	StudentID  string `json:"student_id"`
	UserType   string `json:"user_type"`
}

// Register creates a visitor account.
func (v *VisitorAPI) Register(ctx context.Context, payload RegisterPayload) (model.Visitor, error) {
	env, err := v.c.do(ctx, http.MethodPost, "/visitor/register", "", payload)
	if err != nil {
		return model.Visitor{}, err
	}
	var visitor model.Visitor
	if err := decodeData(env, &visitor); err != nil {
		return model.Visitor{}, err
	}
	return visitor, nil
}

// VisitorLoginResult carries both halves of a successful visitor login.
type VisitorLoginResult struct {
	Token   string        `json:"token"`
	Visitor model.Visitor `json:"visitor"`
}

// Login authenticates a visitor. The identity and token arrive nested
// under the envelope's data field.
func (v *VisitorAPI) Login(ctx context.Context, email, password string) (VisitorLoginResult, error) {
	env, err := v.c.do(ctx, http.MethodPost, "/visitor/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return VisitorLoginResult{}, err
	}

	var result VisitorLoginResult
	if err := decodeData(env, &result); err != nil {
		return VisitorLoginResult{}, err
	}
	if result.Token == "" {
		return VisitorLoginResult{}, &APIError{Status: http.StatusOK, Message: env.errorMessage()}
	}
	return result, nil
}

// Profile fetches the visitor identity behind the bound token.
func (v *VisitorAPI) Profile(ctx context.Context) (model.Visitor, error) {
	var visitor model.Visitor
	if err := v.c.get(ctx, "/visitor/profile", v.token, &visitor); err != nil {
		return model.Visitor{}, err
	}
	return visitor, nil
}

// ProfileUpdate is the mutable subset of the visitor profile.
type ProfileUpdate struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	StudentID  string `json:"student_id"`
}

// UpdateProfile edits the visitor profile and returns the fresh record.
func (v *VisitorAPI) UpdateProfile(ctx context.Context, payload ProfileUpdate) (model.Visitor, error) {
	env, err := v.c.do(ctx, http.MethodPut, "/visitor/profile", v.token, payload)
	if err != nil {
		return model.Visitor{}, err
	}
	var visitor model.Visitor
	if err := decodeData(env, &visitor); err != nil {
		return model.Visitor{}, err
	}
	return visitor, nil
}

// Rooms lists the rooms available for visitor browsing.
func (v *VisitorAPI) Rooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := v.c.get(ctx, "/visitor/rooms", v.token, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Availability is the upstream's answer to an availability pre-check.
type Availability struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// RoomAvailability checks whether a room is free for the given window.
func (v *VisitorAPI) RoomAvailability(ctx context.Context, id int64, date, startTime, endTime string) (Availability, error) {
	q := url.Values{}
	q.Set("date", date)
	q.Set("start_time", startTime)
	q.Set("end_time", endTime)

	env, err := v.c.do(ctx, http.MethodGet, fmt.Sprintf("/visitor/rooms/%d/availability?%s", id, q.Encode()), v.token, nil)
	if err != nil {
		return Availability{}, err
	}
	var avail Availability
	if err := decodeData(env, &avail); err != nil {
		return Availability{}, err
	}
	return avail, nil
}

// BookingPayload is the booking-creation form shape.
type BookingPayload struct {
	RoomID            int64  `json:"room_id"`
	BookingDate       string `json:"booking_date"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Purpose           string `json:"purpose"`
	Description       string `json:"description"`
	ExpectedAttendees int    `json:"expected_attendees"`
}

// CreateBooking submits a new booking request.
func (v *VisitorAPI) CreateBooking(ctx context.Context, payload BookingPayload) (model.Booking, error) {
	env, err := v.c.do(ctx, http.MethodPost, "/visitor/bookings", v.token, payload)
	if err != nil {
		return model.Booking{}, err
	}
	var booking model.Booking
	if err := decodeData(env, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// Bookings lists the visitor's active bookings.
func (v *VisitorAPI) Bookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := v.c.get(ctx, "/visitor/bookings", v.token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingHistory lists the visitor's past bookings.
func (v *VisitorAPI) BookingHistory(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := v.c.get(ctx, "/visitor/bookings/history", v.token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking requests cancellation of the visitor's own booking.
func (v *VisitorAPI) CancelBooking(ctx context.Context, id int64) error {
	_, err := v.c.do(ctx, http.MethodPatch, fmt.Sprintf("/visitor/bookings/%d/cancel", id), v.token, nil)
	return err
}
