// Package filter implements the client-side list predicates the screens
// apply over already-fetched collections. Filtering is non-persistent:
// every function returns a fresh slice and never mutates its input.
package filter

import (
	"strings"

	"room-booking-portal/internal/model"
)

// All is the selector value that disables a predicate.
const All = "all"

func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func statusMatches(selector string, active bool) bool {
	switch selector {
	case "", All:
		return true
	case "active":
		return active
	case "inactive":
		return !active
	default:
		return false
	}
}

// BookingQuery selects bookings by free-text search and status.
type BookingQuery struct {
	Search string
	Status string
}

// Bookings returns the bookings matching the query. The search term
// scans the visitor name, visitor email, and room name.
func Bookings(list []model.Booking, q BookingQuery) []model.Booking {
	out := make([]model.Booking, 0, len(list))
	for _, b := range list {
		if !matches(q.Search, b.Visitor.Name, b.Visitor.Email, b.Room.Name) {
			continue
		}
		if q.Status != "" && q.Status != All && b.Status != q.Status {
			continue
		}
		out = append(out, b)
	}
	return out
}

// RoomQuery selects rooms by free-text search, type, and availability.
type RoomQuery struct {
	Search        string
	RoomType      string
	AvailableOnly bool
}

// Rooms returns the rooms matching the query. The search term scans
// the room name, number, and location.
func Rooms(list []model.Room, q RoomQuery) []model.Room {
	out := make([]model.Room, 0, len(list))
	for _, r := range list {
		if !matches(q.Search, r.RoomName, r.RoomNumber, r.Location) {
			continue
		}
		if q.RoomType != "" && q.RoomType != All && r.RoomType != q.RoomType {
			continue
		}
		if q.AvailableOnly && !r.IsAvailable {
			continue
		}
		out = append(out, r)
	}
	return out
}

// AdminQuery selects admin accounts by free-text search, role, and
// active status.
type AdminQuery struct {
	Search string
	Role   string
	Status string
}

// Admins returns the admin accounts matching the query.
func Admins(list []model.AdminAccount, q AdminQuery) []model.AdminAccount {
	out := make([]model.AdminAccount, 0, len(list))
	for _, a := range list {
		if !matches(q.Search, a.Username, a.Email, a.FirstName, a.LastName) {
			continue
		}
		if q.Role != "" && q.Role != All && a.Role != q.Role {
			continue
		}
		if !statusMatches(q.Status, a.IsActive) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// VisitorQuery selects visitors by free-text search and active status.
type VisitorQuery struct {
	Search string
	Status string
}

// Visitors returns the visitors matching the query. The search term
// scans name, email, phone, and department.
func Visitors(list []model.Visitor, q VisitorQuery) []model.Visitor {
	out := make([]model.Visitor, 0, len(list))
	for _, v := range list {
		name := strings.TrimSpace(v.FirstName + " " + v.LastName)
		if !matches(q.Search, name, v.Email, v.Phone, v.Department) {
			continue
		}
		if !statusMatches(q.Status, v.IsActive) {
			continue
		}
		out = append(out, v)
	}
	return out
}
