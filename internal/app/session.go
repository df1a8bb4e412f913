package app

import "net/http"

type sessionKey string

const (
	SessionKeyGuest = sessionKey("guest")
)

func (s sessionKey) String() string {
	return string(s)
}

// currentUserID returns the caller's session token, which is the user
// identity the ledger tracks. The ensureGuestSession middleware guarantees a
// token exists by the time a handler runs.
func (app *application) currentUserID(r *http.Request) string {
	return app.sessionManager.Token(r.Context())
}
