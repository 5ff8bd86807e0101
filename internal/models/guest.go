package models

import (
	"cmp"
	"strings"

	"github.com/google/uuid"
)

// Guest is the single entity kept in the directory.
type Guest struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Hash string    `json:"hash"`
}

// NewGuest returns a guest with a fresh random (v4) identifier.
func NewGuest(name, hash string) Guest {
	return Guest{ID: uuid.New(), Name: name, Hash: hash}
}

func (g Guest) Equal(other Guest) bool {
	return g == other
}

// Compare orders guests by id, then name, then hash.
func (g Guest) Compare(other Guest) int {
	if c := strings.Compare(g.ID.String(), other.ID.String()); c != 0 {
		return c
	}
	if c := cmp.Compare(g.Name, other.Name); c != 0 {
		return c
	}
	return cmp.Compare(g.Hash, other.Hash)
}
