package model

// Room represents a bookable room. Mutated only through the admin
// endpoints; visitors see a read-only view of the same record.
type Room struct {
	ID               int64    `json:"id"`
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
	IsAvailable      bool     `json:"is_available"`
	RequiresApproval bool     `json:"requires_approval"`
	ImageURL         string   `json:"image_url,omitempty"`
}
