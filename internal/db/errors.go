package db

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound covers both a missing row and a row owned by another user;
// callers cannot distinguish the two, which keeps ids unguessable.
var ErrNotFound = errors.New("record not found")

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
