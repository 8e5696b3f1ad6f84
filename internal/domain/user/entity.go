package user

import (
	"github.com/google/uuid"
)

// Actor is the authenticated caller of an operation, as asserted by the
// identity provider. The engine never stores users.
type Actor struct {
	userID uuid.UUID
	role   Role
}

func NewActor(userID uuid.UUID, isAdmin bool) Actor {
	return Actor{userID: userID, role: RoleFromAdminFlag(isAdmin)}
}

func (a Actor) UserID() uuid.UUID { return a.userID }
func (a Actor) Role() Role        { return a.role }
func (a Actor) IsAdmin() bool     { return a.role == RoleAdmin }

func (a Actor) IsAuthenticated() bool { return a.userID != uuid.Nil }

// Is reports whether the actor is the given user.
func (a Actor) Is(userID uuid.UUID) bool {
	return a.userID != uuid.Nil && a.userID == userID
}
