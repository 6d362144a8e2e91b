package model

// Booking status codes as reported by the upstream API. Transitions are
// server-authoritative; the portal only requests them and re-reads.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

var bookingStatusLabels = map[string]string{
	BookingPending:   "Pending Approval",
	BookingConfirmed: "Approved",
	BookingRejected:  "Rejected",
	BookingCancelled: "Cancelled",
	BookingCompleted: "Completed",
}

// BookingStatusLabel returns the human-readable badge text for a status
// code. Unknown codes fall back to the pending label, matching how the
// screens treat unrecognized statuses.
func BookingStatusLabel(status string) string {
	if label, ok := bookingStatusLabels[status]; ok {
		return label
	}
	return bookingStatusLabels[BookingPending]
}

// BookingParty is the embedded visitor summary on a booking record.
type BookingParty struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingRoom is the embedded room summary on a booking record.
type BookingRoom struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	RoomNumber string `json:"room_number"`
	Location   string `json:"location"`
}

// Booking represents a room booking as understood by the portal.
type Booking struct {
	ID                int64        `json:"id"`
	Visitor           BookingParty `json:"visitor"`
	Room              BookingRoom  `json:"room"`
	Status            string       `json:"status"`
	StartTime         string       `json:"start_time"`
	EndTime           string       `json:"end_time"`
	Purpose           string       `json:"purpose"`
	Description       string       `json:"description"`
	ExpectedAttendees int          `json:"expected_attendees"`
	TotalCost         float64      `json:"total_cost"`
	AdminNotes        string       `json:"admin_notes"`
	BookingReference  string       `json:"booking_reference"`
	CreatedAt         string       `json:"created_at"`
}

// StatusLabel returns the badge text for this booking's status.
func (b Booking) StatusLabel() string {
	return BookingStatusLabel(b.Status)
}
