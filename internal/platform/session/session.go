package session

import (
	"context"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/pgxstore"
	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myanimeverse/animeverse_backend/internal/platform/config"
)

// scs gob-encodes session values, so any non-primitive type stored in a
// session must be registered with gob before the first save.
func init() {
	gob.Register(time.Time{})
}

// Session data keys. Only the public sequential user id goes into the
// session; the internal identity is resolved server-side when needed.
const (
	keyUserID    = "userID"
	keyUsername  = "username"
	keyLoginTime = "loginTime"
)

// Manager wraps scs with the application's cookie policy and typed accessors
// for the identity fields stored per session.
type Manager struct {
	*scs.SessionManager
}

// NewManager builds a postgres-backed session manager. Session rows live in
// the sessions table and expired rows are cleaned up by pgxstore's background
// goroutine.
func NewManager(pool *pgxpool.Pool, cfg *config.Config) *Manager {
	sm := scs.New()
	sm.Store = pgxstore.New(pool)
	sm.Lifetime = cfg.SessionLifetime
	sm.Cookie.Name = cfg.SessionCookieName
	sm.Cookie.HttpOnly = true
	sm.Cookie.Path = "/"
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = cfg.IsProduction
	return &Manager{SessionManager: sm}
}

// LoginUser records the authenticated identity in the session. The token is
// renewed first so a pre-login session id never survives authentication.
func (m *Manager) LoginUser(ctx context.Context, userID int64, username string) error {
	if err := m.RenewToken(ctx); err != nil {
		return err
	}
	m.Put(ctx, keyUserID, userID)
	m.Put(ctx, keyUsername, username)
	m.Put(ctx, keyLoginTime, time.Now().UTC())
	return nil
}

// LogoutUser destroys the session's server-side data and expires the cookie.
func (m *Manager) LogoutUser(ctx context.Context) error {
	return m.Destroy(ctx)
}

// UserID returns the authenticated user's public id, if any.
func (m *Manager) UserID(ctx context.Context) (int64, bool) {
	if !m.Exists(ctx, keyUserID) {
		return 0, false
	}
	return m.GetInt64(ctx, keyUserID), true
}

// Username returns the username stored at login, or "".
func (m *Manager) Username(ctx context.Context) string {
	return m.GetString(ctx, keyUsername)
}

// LoginTime returns when the current session authenticated, if it has.
func (m *Manager) LoginTime(ctx context.Context) (time.Time, bool) {
	if !m.Exists(ctx, keyLoginTime) {
		return time.Time{}, false
	}
	return m.GetTime(ctx, keyLoginTime), true
}
