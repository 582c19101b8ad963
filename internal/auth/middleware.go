package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracking-jobs/backend/internal/models"
	"gorm.io/gorm"
)

const userIDKey = "userID"

// RequireUser resolves the caller's identity for the dashboard API. Session
// handling lives in front of this service; whatever terminates the session
// forwards the account id in X-User-ID, and this middleware only checks that
// the account actually exists.
func RequireUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
			return
		}

		var user models.User
		err := db.Select("id").First(&user, "id = ?", userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// UserID returns the identity resolved by RequireUser.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
