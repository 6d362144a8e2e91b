package upstream

import (
	"errors"
	"fmt"
)

// UnreachableMessage is the user-facing text for transport failures,
// kept distinct from server-reported errors.
const UnreachableMessage = "Cannot connect to server. Please check your internet connection or try again later."

var (
	// ErrUnreachable marks a network-transport failure: no response
	// reached the portal at all.
	ErrUnreachable = errors.New("upstream unreachable")

	// ErrUnauthorized marks a 401 from the upstream. The caller owns the
	// decision to purge credentials and redirect.
	ErrUnauthorized = errors.New("upstream rejected credentials")
)

// APIError is a server-reported validation or business error.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream returned status %d", e.Status)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Message)
}

// UserMessage maps an upstream error to the text a screen should show.
// Transport failures get the distinguished connectivity message, server
// errors surface their own message, and anything else falls back to the
// screen-provided default.
func UserMessage(err error, fallback string) string {
	if errors.Is(err, ErrUnreachable) {
		return UnreachableMessage
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
