package api

import (
	"github.com/gin-gonic/gin"

	"room-booking-portal/internal/cache"
	"room-booking-portal/internal/model"
	"room-booking-portal/internal/mw"
)

// The fetch helpers below read through the collection cache: a fresh
// cached copy is served as-is, otherwise the upstream is asked and the
// result cached. Mutations invalidate the relevant keys so the next
// read refetches.

func (h *Handler) fetchBookings(c *gin.Context) ([]model.Booking, error) {
	if v, ok := h.cache.Get(cache.KeyBookings); ok {
		return v.([]model.Booking), nil
	}
	list, err := h.admin(c).Bookings(c.Request.Context())
	if err != nil {
		return nil, err
	}
	h.cache.Set(cache.KeyBookings, list)
	return list, nil
}

func (h *Handler) fetchRooms(c *gin.Context) ([]model.Room, error) {
	if v, ok := h.cache.Get(cache.KeyRooms); ok {
		return v.([]model.Room), nil
	}
	list, err := h.admin(c).Rooms(c.Request.Context())
	if err != nil {
		return nil, err
	}
	h.cache.Set(cache.KeyRooms, list)
	return list, nil
}

func (h *Handler) fetchUsers(c *gin.Context) ([]model.Visitor, error) {
	if v, ok := h.cache.Get(cache.KeyUsers); ok {
		return v.([]model.Visitor), nil
	}
	list, err := h.admin(c).Visitors(c.Request.Context())
	if err != nil {
		return nil, err
	}
	h.cache.Set(cache.KeyUsers, list)
	return list, nil
}

func (h *Handler) fetchAdmins(c *gin.Context) ([]model.AdminAccount, error) {
	if v, ok := h.cache.Get(cache.KeyAdmins); ok {
		return v.([]model.AdminAccount), nil
	}
	list, err := h.admin(c).Admins(c.Request.Context())
	if err != nil {
		return nil, err
	}
	h.cache.Set(cache.KeyAdmins, list)
	return list, nil
}

func (h *Handler) fetchVisitorRooms(c *gin.Context) ([]model.Room, error) {
	key := cache.Scoped(cache.KeyVisitorRooms, mw.Session(c).ID)
	if v, ok := h.cache.Get(key); ok {
		return v.([]model.Room), nil
	}
	list, err := h.visitor(c).Rooms(c.Request.Context())
	if err != nil {
		return nil, err
	}
	h.cache.Set(key, list)
	return list, nil
}

func (h *Handler) fetchVisitorBookings(c *gin.Context, history bool) ([]model.Booking, error) {
	name := cache.KeyVisitorBookings
	if history {
		name = cache.KeyVisitorHistory
	}
	key := cache.Scoped(name, mw.Session(c).ID)
	if v, ok := h.cache.Get(key); ok {
		return v.([]model.Booking), nil
	}

	var (
		list []model.Booking
		err  error
	)
	if history {
		list, err = h.visitor(c).BookingHistory(c.Request.Context())
	} else {
		list, err = h.visitor(c).Bookings(c.Request.Context())
	}
	if err != nil {
		return nil, err
	}
	h.cache.Set(key, list)
	return list, nil
}
