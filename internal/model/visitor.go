package model

// Visitor represents an external end-user identity as returned by the
// visitor login/registration endpoints. The portal persists it verbatim
// as the session's profile snapshot.
type Visitor struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Department    string `json:"department"`
	StudentID     string `json:"student_id"`
	UserType      string `json:"user_type"`
	IsActive      bool   `json:"is_active"`
	EmailVerified bool   `json:"email_verified"`
	CreatedAt     string `json:"created_at"`
}
