package model

import apperrors "recipehub/internal/errors"

// Owned is implemented by content that only its author may change.
type Owned interface {
	OwnerID() uint
}

// AssertOwner returns ErrPermissionDenied unless actor owns entity.
func AssertOwner(entity Owned, actor *User) error {
	if actor == nil || entity.OwnerID() != actor.ID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
