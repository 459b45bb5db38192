// Package session binds a browser session to the identity of the logged-in tutor.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Store persists the identity behind an opaque session token.
type Store interface {
	// Load returns the username bound to token or apperrors.ErrSessionNotFound.
	Load(ctx context.Context, token string) (string, error)
	// Save binds username to the session identified by token (empty for a new
	// session) and returns the token the client must present from now on.
	Save(ctx context.Context, token, username string) (string, error)
	// Destroy forgets the session. Unknown tokens are not an error.
	Destroy(ctx context.Context, token string) error
}

// CookieConfig describes the cookie carrying the session token
type CookieConfig struct {
	Name   string
	Path   string
	Secure bool
	MaxAge time.Duration
}

// Cookies reads and writes the session token on gin requests
type Cookies struct {
	config CookieConfig
}

// NewCookies creates a cookie helper, filling in defaults
func NewCookies(config CookieConfig) *Cookies {
	if config.Name == "" {
		config.Name = "tutordesk_session"
	}
	if config.Path == "" {
		config.Path = "/"
	}
	return &Cookies{config: config}
}

// Token returns the session token sent by the client, or "" when absent
func (c *Cookies) Token(ctx *gin.Context) string {
	token, err := ctx.Cookie(c.config.Name)
	if err != nil {
		return ""
	}
	return token
}

// Set writes token to the response
func (c *Cookies) Set(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.config.Name, token, int(c.config.MaxAge.Seconds()), c.config.Path, "", c.config.Secure, true)
}

// Clear expires the cookie on the client
func (c *Cookies) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.config.Name, "", -1, c.config.Path, "", c.config.Secure, true)
}
