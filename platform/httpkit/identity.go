// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoleAdmin is the role string granting access to admin-only routes.
const RoleAdmin = "admin"

// Identity represents the authenticated user's identity as resolved from the
// bearer token. It is attached to the request once by AuthRequired and reused
// by every downstream check; no handler re-fetches the user record for it.
type Identity interface {
	// UserID returns the authenticated user's ID.
	UserID() uuid.UUID
	// Email returns the email the token was issued for.
	Email() string
	// Role returns the user's role ("user" or "admin").
	Role() string
	// IsAdmin checks if the user carries the admin role.
	IsAdmin() bool
	// IsAuthenticated returns true if the user is authenticated.
	IsAuthenticated() bool
}

// identity is the concrete implementation of Identity.
type identity struct {
	userID        uuid.UUID
	email         string
	role          string
	authenticated bool
}

func (i *identity) UserID() uuid.UUID { return i.userID }

func (i *identity) Email() string { return i.email }

func (i *identity) Role() string { return i.role }

func (i *identity) IsAdmin() bool { return i.role == RoleAdmin }

func (i *identity) IsAuthenticated() bool { return i.authenticated }

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, userOK := c.Get(ContextUserIDKey)
	if !userOK {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	email := c.GetString(ContextEmailKey)
	role := c.GetString(ContextRoleKey)

	return &identity{
		userID:        uid,
		email:         email,
		role:          role,
		authenticated: true,
	}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the user is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized, no token provided"})
		return nil
	}
	return id
}
