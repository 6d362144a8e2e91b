package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"room-booking-portal/config"
	"room-booking-portal/internal/model"
	"room-booking-portal/internal/session"
	"room-booking-portal/internal/upstream"
)

const (
	fakeStaffToken   = "staff-token"
	fakeVisitorToken = "visitor-token"
)

// fakeUpstream simulates the remote booking API, counting every call so
// tests can assert what did (and did not) hit the network.
type fakeUpstream struct {
	mu               sync.Mutex
	calls            map[string]int
	bookings         []model.Booking
	staffRevoked     bool
	visitorRevoked   bool
	lastAdminPayload map[string]any
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{
		calls: map[string]int{},
		bookings: []model.Booking{
			{ID: 1, Status: model.BookingPending, Purpose: "Seminar", CreatedAt: "2026-08-01T10:00:00Z",
				Visitor: model.BookingParty{ID: 7, Name: "Jane Visitor", Email: "jane@example.com"},
				Room:    model.BookingRoom{ID: 3, Name: "Lecture Hall", RoomNumber: "A-101"}},
			{ID: 2, Status: model.BookingConfirmed, Purpose: "Workshop", CreatedAt: "2026-08-03T09:00:00Z",
				Visitor: model.BookingParty{ID: 8, Name: "Sam Visitor", Email: "sam@example.com"},
				Room:    model.BookingRoom{ID: 4, Name: "Meeting Room", RoomNumber: "B-202"}},
			{ID: 3, Status: model.BookingPending, Purpose: "Review", CreatedAt: "2026-08-02T15:00:00Z",
				Visitor: model.BookingParty{ID: 7, Name: "Jane Visitor", Email: "jane@example.com"},
				Room:    model.BookingRoom{ID: 3, Name: "Lecture Hall", RoomNumber: "A-101"}},
		},
	}
}

func (f *fakeUpstream) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeUpstream) setStatus(id int64, status string) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
		}
	}
}

func writeEnvelope(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls[r.Method+" "+r.URL.Path]++
	f.mu.Unlock()

	bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	key := r.Method + " " + r.URL.Path

	admin := map[string]any{
		"id": 1, "username": "ada", "email": "admin@example.com",
		"first_name": "Ada", "last_name": "Doe", "role": "super_admin", "is_active": true,
	}
	visitor := map[string]any{
		"id": 7, "first_name": "Jane", "last_name": "Visitor",
		"email": "jane@example.com", "user_type": "student", "is_active": true,
	}

	switch {
	case key == "POST /admin/login":
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["email"] != "admin@example.com" || creds["password"] != "secret123" {
			writeEnvelope(w, http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "token": fakeStaffToken, "admin": admin})

	case key == "GET /admin/profile":
		f.mu.Lock()
		revoked := f.staffRevoked
		f.mu.Unlock()
		if bearer != fakeStaffToken || revoked {
			writeEnvelope(w, http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "data": admin})

	case key == "GET /admin/bookings":
		f.mu.Lock()
		list := append([]model.Booking(nil), f.bookings...)
		f.mu.Unlock()
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "data": list})

	case strings.HasPrefix(key, "PATCH /admin/bookings/") && strings.HasSuffix(key, "/approve"):
		f.mu.Lock()
		f.setStatus(1, model.BookingConfirmed)
		f.mu.Unlock()
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "message": "Booking approved"})

	case strings.HasPrefix(key, "PATCH /admin/bookings/") && strings.HasSuffix(key, "/reject"):
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "message": "Booking rejected"})

	case key == "GET /admin/rooms":
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "data": []gin.H{
			{"id": 3, "room_name": "Lecture Hall", "room_number": "A-101", "room_type": "lecture", "is_available": true},
			{"id": 4, "room_name": "Meeting Room", "room_number": "B-202", "room_type": "meeting", "is_available": false},
		}})

	case key == "GET /admin/visitors":
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "data": []any{visitor}})

	case key == "GET /admin/admins":
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "data": []gin.H{
			admin,
			{"id": 2, "username": "bob", "email": "bob@example.com", "first_name": "Bob", "last_name": "Ray", "role": "admin", "is_active": true},
		}})

	case key == "POST /admin/register":
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		f.mu.Lock()
		f.lastAdminPayload = payload
		f.mu.Unlock()
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "message": "Admin created"})

	case strings.HasPrefix(key, "PATCH /admin/admins/"),
		strings.HasPrefix(key, "PATCH /admin/visitors/"),
		strings.HasPrefix(key, "DELETE /admin/rooms/"),
		strings.HasPrefix(key, "DELETE /admin/bookings/"):
		writeEnvelope(w, http.StatusOK, gin.H{"success": true})

	case key == "POST /visitor/login":
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["email"] != "jane@example.com" || creds["password"] != "secret123" {
			writeEnvelope(w, http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "data": gin.H{"token": fakeVisitorToken, "visitor": visitor}})

	case strings.HasPrefix(key, "GET /visitor/"):
		f.mu.Lock()
		revoked := f.visitorRevoked
		f.mu.Unlock()
		if bearer != fakeVisitorToken || revoked {
			writeEnvelope(w, http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		switch r.URL.Path {
		case "/visitor/rooms":
			writeEnvelope(w, http.StatusOK, gin.H{"success": true, "data": []gin.H{
				{"id": 3, "room_name": "Lecture Hall", "room_number": "A-101", "room_type": "lecture", "is_available": true},
			}})
		case "/visitor/bookings", "/visitor/bookings/history":
			writeEnvelope(w, http.StatusOK, gin.H{"success": true, "data": []model.Booking{}})
		default:
			if strings.HasSuffix(r.URL.Path, "/availability") {
				writeEnvelope(w, http.StatusOK, gin.H{"success": true, "data": gin.H{"available": true}})
				return
			}
			writeEnvelope(w, http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
		}

	case key == "POST /visitor/bookings":
		writeEnvelope(w, http.StatusOK, gin.H{"success": true, "data": f.bookings[0]})

	default:
		writeEnvelope(w, http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	}
}

// portal wires a router against the fake upstream with an in-memory
// session store, keeping the browser cookie across requests.
type portal struct {
	t      *testing.T
	router *gin.Engine
	store  session.Store
	fake   *fakeUpstream
	cookie *http.Cookie
}

func newPortal(t *testing.T) *portal {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := newFakeUpstream()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Session{}))
	store := session.NewGormStore(db)

	cfg := &config.Config{
		Server: config.ServerConfig{RateLimitPerSec: 1000, RateLimitBurst: 1000, CacheTTL: time.Minute},
		Session: config.SessionConfig{
			CookieName: "portal_session",
			TTL:        time.Hour,
		},
	}
	up := upstream.New(&config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})

	router := NewRouter(cfg, store, session.NewStaff(store, up), session.NewVisitor(store, up), up)
	return &portal{t: t, router: router, store: store, fake: fake}
}

func (p *portal) do(method, path, body string) *httptest.ResponseRecorder {
	p.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if p.cookie != nil {
		req.AddCookie(p.cookie)
	}

	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == "portal_session" {
			p.cookie = c
		}
	}
	return w
}

func (p *portal) loginStaff() {
	p.t.Helper()
	w := p.do(http.MethodPost, "/login", `{"email":"admin@example.com","password":"secret123"}`)
	require.Equal(p.t, http.StatusOK, w.Code, w.Body.String())
}

func (p *portal) loginVisitor() {
	p.t.Helper()
	w := p.do(http.MethodPost, "/visitor/login", `{"email":"jane@example.com","password":"secret123"}`)
	require.Equal(p.t, http.StatusOK, w.Code, w.Body.String())
}

func (p *portal) session() *model.Session {
	p.t.Helper()
	require.NotNil(p.t, p.cookie)
	sess, err := p.store.Get(context.Background(), p.cookie.Value)
	require.NoError(p.t, err)
	return sess
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRootRedirectsToVisitorLogin(t *testing.T) {
	p := newPortal(t)
	w := p.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/visitor/login", w.Header().Get("Location"))
}

func TestStaffGuardRedirectsUnauthenticated(t *testing.T) {
	p := newPortal(t)
	w := p.do(http.MethodGet, "/admin/bookings", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Zero(t, p.fake.count("GET /admin/bookings"))
}

func TestStaffLoginRejectsBadCredentials(t *testing.T) {
	p := newPortal(t)
	w := p.do(http.MethodPost, "/login", `{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["message"])
}

func TestStaffBookingsVerifyEveryRequestButCacheTheList(t *testing.T) {
	p := newPortal(t)
	p.loginStaff()

	w := p.do(http.MethodGet, "/admin/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 3, body["total"])

	rows := body["data"].([]any)
	first := rows[0].(map[string]any)
	assert.Equal(t, "Pending Approval", first["status_label"])

	w = p.do(http.MethodGet, "/admin/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)

	// One list fetch (second read served from cache), but one token
	// verification per protected request.
	assert.Equal(t, 1, p.fake.count("GET /admin/bookings"))
	assert.Equal(t, 2, p.fake.count("GET /admin/profile"))
}

func TestStaffBookingsFilter(t *testing.T) {
	p := newPortal(t)
	p.loginStaff()

	w := p.do(http.MethodGet, "/admin/bookings?status=pending&search=jane", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decodeBody(t, w)["total"])

	w = p.do(http.MethodGet, "/admin/bookings?status=cancelled", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decodeBody(t, w)["total"])
}

func TestApproveInvalidatesBookingList(t *testing.T) {
	p := newPortal(t)
	p.loginStaff()

	w := p.do(http.MethodGet, "/admin/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = p.do(http.MethodPatch, "/admin/bookings/1/approve", `{"confirm":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking approved successfully", decodeBody(t, w)["message"])

	w = p.do(http.MethodGet, "/admin/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeBody(t, w)["data"].([]any)
	assert.Equal(t, "Approved", rows[0].(map[string]any)["status_label"])

	// The mutation dropped the cached list, forcing a refetch.
	assert.Equal(t, 2, p.fake.count("GET /admin/bookings"))
}

func TestMutationsRequireConfirmation(t *testing.T) {
	p := newPortal(t)
	p.loginStaff()

	w := p.do(http.MethodPatch, "/admin/bookings/1/approve", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Confirmation required", decodeBody(t, w)["message"])
	assert.Zero(t, p.fake.count("PATCH /admin/bookings/1/approve"))

	w = p.do(http.MethodDelete, "/admin/rooms/3", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, p.fake.count("DELETE /admin/rooms/3"))

	// The query form works for bodyless deletes.
	w = p.do(http.MethodDelete, "/admin/rooms/3?confirm=true", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, p.fake.count("DELETE /admin/rooms/3"))
}

func TestRejectBookingRequiresReason(t *testing.T) {
	p := newPortal(t)
	p.loginStaff()

	w := p.do(http.MethodPatch, "/admin/bookings/1/reject", `{"confirm":true,"reason":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide a reason for rejection", decodeBody(t, w)["message"])
	assert.Zero(t, p.fake.count("PATCH /admin/bookings/1/reject"))

	w = p.do(http.MethodPatch, "/admin/bookings/1/reject", `{"confirm":true,"reason":"Room under maintenance"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, p.fake.count("PATCH /admin/bookings/1/reject"))
}

func TestCreateAdminValidatesBeforeNetwork(t *testing.T) {
	p := newPortal(t)
	p.loginStaff()

	w := p.do(http.MethodPost, "/admin/admins", `{"username":"bob","email":"not-an-email","password":"secret123","first_name":"Bob","last_name":"Ray","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter a valid email address", decodeBody(t, w)["message"])
	assert.Zero(t, p.fake.count("POST /admin/register"))

	w = p.do(http.MethodPost, "/admin/admins", `{"username":"john doe","email":"john@example.com","password":"secret123","first_name":"John","last_name":"Doe","role":"admin"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	p.fake.mu.Lock()
	payload := p.fake.lastAdminPayload
	p.fake.mu.Unlock()
	assert.Equal(t, "john_doe", payload["username"])
}

func TestSelfDeactivationRefused(t *testing.T) {
	p := newPortal(t)
	p.loginStaff()

	w := p.do(http.MethodPatch, "/admin/admins/1/deactivate", `{"confirm":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You cannot deactivate your own account", decodeBody(t, w)["message"])
	assert.Zero(t, p.fake.count("PATCH /admin/admins/1/deactivate"))

	w = p.do(http.MethodPatch, "/admin/admins/2/deactivate", `{"confirm":true}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminListMarksSelfUndeactivatable(t *testing.T) {
	p := newPortal(t)
	p.loginStaff()

	w := p.do(http.MethodGet, "/admin/admins", "")
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeBody(t, w)["data"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, false, rows[0].(map[string]any)["can_deactivate"])
	assert.Equal(t, true, rows[1].(map[string]any)["can_deactivate"])
}

func TestDashboardAggregation(t *testing.T) {
	p := newPortal(t)
	p.loginStaff()

	w := p.do(http.MethodGet, "/admin/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.EqualValues(t, 3, data["total_bookings"])
	assert.EqualValues(t, 2, data["pending_bookings"])
	assert.EqualValues(t, 1, data["confirmed_bookings"])
	assert.EqualValues(t, 2, data["total_rooms"])
	assert.EqualValues(t, 1, data["total_users"])

	recent := data["recent_bookings"].([]any)
	require.Len(t, recent, 3)
	// Newest first.
	assert.EqualValues(t, 2, recent[0].(map[string]any)["id"])
	assert.EqualValues(t, 3, recent[1].(map[string]any)["id"])
}

func TestStaffRevokedTokenRedirectsAndClears(t *testing.T) {
	p := newPortal(t)
	p.loginStaff()

	p.fake.mu.Lock()
	p.fake.staffRevoked = true
	p.fake.mu.Unlock()

	w := p.do(http.MethodGet, "/admin/bookings", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Empty(t, p.session().AdminToken)
}

func TestVisitorGuardRedirectsUnauthenticated(t *testing.T) {
	p := newPortal(t)
	w := p.do(http.MethodGet, "/visitor/bookings", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/visitor/login", w.Header().Get("Location"))
}

func TestVisitorLoginFlashAndTrustOnReload(t *testing.T) {
	p := newPortal(t)
	p.loginVisitor()

	w := p.do(http.MethodGet, "/visitor/rooms", "")
	require.Equal(t, http.StatusOK, w.Code)
	notes := decodeBody(t, w)["notifications"].([]any)
	require.Len(t, notes, 1)
	assert.Equal(t, "Login successful!", notes[0].(map[string]any)["message"])

	// Flashes are consumed on read.
	w = p.do(http.MethodGet, "/visitor/rooms", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["notifications"])

	// Restoration never re-verifies the visitor token.
	assert.Equal(t, 1, p.fake.count("GET /visitor/rooms"))
	assert.Zero(t, p.fake.count("GET /visitor/profile"))
}

func TestVisitorRevokedTokenPurgesBothHalves(t *testing.T) {
	p := newPortal(t)
	p.loginVisitor()

	p.fake.mu.Lock()
	p.fake.visitorRevoked = true
	p.fake.mu.Unlock()

	w := p.do(http.MethodGet, "/visitor/bookings", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/visitor/login", w.Header().Get("Location"))

	sess := p.session()
	assert.Empty(t, sess.VisitorToken)
	assert.Empty(t, sess.VisitorUser)

	// The purged session no longer passes the guard at all.
	w = p.do(http.MethodGet, "/visitor/bookings", "")
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestVisitorBookingValidatesBeforeNetwork(t *testing.T) {
	p := newPortal(t)
	p.loginVisitor()

	w := p.do(http.MethodPost, "/visitor/bookings", `{"room_id":3,"booking_date":"2030-01-05","start_time":"14:00","end_time":"13:00","purpose":"Study"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "End time must be after start time", decodeBody(t, w)["message"])
	assert.Zero(t, p.fake.count("POST /visitor/bookings"))
	assert.Zero(t, p.fake.count("GET /visitor/rooms/3/availability"))

	w = p.do(http.MethodPost, "/visitor/bookings", `{"room_id":3,"booking_date":"2030-01-05","start_time":"13:00","end_time":"14:00","purpose":"Study"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Booking request submitted successfully!", decodeBody(t, w)["message"])
	assert.Equal(t, 1, p.fake.count("GET /visitor/rooms/3/availability"))
	assert.Equal(t, 1, p.fake.count("POST /visitor/bookings"))
}

func TestVisitorProfileServedFromSnapshot(t *testing.T) {
	p := newPortal(t)
	p.loginVisitor()

	w := p.do(http.MethodGet, "/visitor/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "jane@example.com", data["email"])
	assert.Zero(t, p.fake.count("GET /visitor/profile"))
}

func TestVisitorLogoutClearsSession(t *testing.T) {
	p := newPortal(t)
	p.loginVisitor()

	w := p.do(http.MethodPost, "/visitor/logout", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/visitor/login", w.Header().Get("Location"))

	sess := p.session()
	assert.Empty(t, sess.VisitorToken)
	assert.Empty(t, sess.VisitorUser)
}

func TestUnreachableUpstreamMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Session{}))
	store := session.NewGormStore(db)

	// A server that is already gone.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cfg := &config.Config{
		Server:  config.ServerConfig{RateLimitPerSec: 1000, RateLimitBurst: 1000, CacheTTL: time.Minute},
		Session: config.SessionConfig{CookieName: "portal_session", TTL: time.Hour},
	}
	up := upstream.New(&config.UpstreamConfig{BaseURL: srv.URL, Timeout: time.Second})
	router := NewRouter(cfg, store, session.NewStaff(store, up), session.NewVisitor(store, up), up)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"admin@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, upstream.UnreachableMessage, body["message"])
}
