package middleware

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/tutordesk/internal/app/models/dto"
)

const flashCookieName = "tutordesk_flash"

// Flash categories
const (
	FlashSuccess   = "success"
	FlashInfo      = "info"
	FlashDanger    = "danger"
	FlashSecondary = "secondary"
)

// SetFlash leaves a message for the next page the client loads
func SetFlash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookieName, url.QueryEscape(category+"|"+message), 0, "/", "", false, true)
}

// PopFlash returns the pending flash message and clears it, or nil when none is pending
func PopFlash(c *gin.Context) *dto.FlashMessage {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	value, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	category, message, ok := strings.Cut(value, "|")
	if !ok {
		return nil
	}
	return &dto.FlashMessage{Category: category, Message: message}
}
