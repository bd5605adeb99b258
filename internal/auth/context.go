package auth

import "github.com/gin-gonic/gin"

const identityKey = "authIdentity"

// Identity is the request-scoped authenticated principal, produced once by the
// AuthRequired middleware.
type Identity struct {
	UserID string
	Role   string
}

// SetIdentity stores the verified identity into the Gin context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// GetIdentity returns the authenticated identity, or false when the request
// passed through no auth middleware.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	id, _ := GetIdentity(c)
	return id.UserID
}
