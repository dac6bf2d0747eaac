package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"blogicum/internal/db"
	"blogicum/internal/models"
)

const CheckUserKey = "user"

// AuthRequired ensures a user is logged in. It relies on LoadUser having
// run first: a session id that no longer resolves to a user (deleted
// account, stale cookie) is cleared and sent back to login instead of
// reaching handlers that expect a context user.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			session := sessions.Default(c)
			if session.Get("user_id") != nil {
				session.Clear()
				session.Save()
			}
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoadUser retrieves user from session and sets to context
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			if result := db.DB.First(&user, userID); result.Error == nil {
				c.Set(CheckUserKey, &user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the session user set by LoadUser, or nil for
// anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(CheckUserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
