package domain

// UserProfile is the cached profile of the signed-in user as returned by the
// ParkMate API. It is overwritten wholesale on login, refresh, and profile
// update; the client never merges partial updates into it.
type UserProfile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}

// Storage keys for the persisted session. These match the keys the ParkMate
// web client has always used, so a file store can be shared between them.
const (
	KeyAccessToken  = "parkmate_access_token"
	KeyRefreshToken = "parkmate_refresh_token"
	KeyUser         = "parkmate_user"
)
