package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/tutordesk/internal/app/auth"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
	"github.com/yigit/tutordesk/internal/pkg/session"
)

// Context keys set by LoadSession
const (
	IdentityKey     = "identity"
	sessionTokenKey = "sessionToken"
)

// LoginPath is where requests without a session are sent
const LoginPath = "/login"

// SessionMiddleware binds requests to the session store
type SessionMiddleware struct {
	store   session.Store
	cookies *session.Cookies
	logger  zerolog.Logger
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(store session.Store, cookies *session.Cookies, logger zerolog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		store:   store,
		cookies: cookies,
		logger:  logger,
	}
}

// LoadSession resolves the session cookie into the identity of the request.
// A request without a valid session simply carries no identity.
func (m *SessionMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.cookies.Token(c)
		if token == "" {
			c.Next()
			return
		}

		username, err := m.store.Load(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(IdentityKey, username)
			c.Set(sessionTokenKey, token)
		case errors.Is(err, apperrors.ErrSessionNotFound):
			m.cookies.Clear(c)
		default:
			m.logger.Error().Err(err).Msg("Failed to load session")
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSession redirects requests without an identity to the login page
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := appAuth.RequireSession(Identity(c)); err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Establish starts a fresh session for username and sets its cookie
func (m *SessionMiddleware) Establish(c *gin.Context, username string) error {
	token, err := m.store.Save(c.Request.Context(), "", username)
	if err != nil {
		return err
	}
	m.cookies.Set(c, token)
	c.Set(IdentityKey, username)
	c.Set(sessionTokenKey, token)
	return nil
}

// Rebind points the current session at username, used after a rename
func (m *SessionMiddleware) Rebind(c *gin.Context, username string) error {
	token, err := m.store.Save(c.Request.Context(), c.GetString(sessionTokenKey), username)
	if err != nil {
		return err
	}
	m.cookies.Set(c, token)
	c.Set(IdentityKey, username)
	c.Set(sessionTokenKey, token)
	return nil
}

// Destroy ends the current session and clears its cookie
func (m *SessionMiddleware) Destroy(c *gin.Context) error {
	err := m.store.Destroy(c.Request.Context(), c.GetString(sessionTokenKey))
	m.cookies.Clear(c)
	c.Set(IdentityKey, "")
	c.Set(sessionTokenKey, "")
	return err
}

// Identity returns the username of the logged-in tutor, or "" when there is none
func Identity(c *gin.Context) string {
	return c.GetString(IdentityKey)
}
