package models

// SessionRequest is the body of POST /jwt. Every field becomes a token claim.
type SessionRequest map[string]interface{}

// SessionResponse is returned by POST /jwt and POST /logout.
type SessionResponse struct {
	Success bool `json:"success"`
}
