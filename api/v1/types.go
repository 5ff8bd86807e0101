package v1

import (
	"github.com/google/uuid"

	"github.com/cordial-dev/cordial/internal/models"
	"github.com/cordial-dev/cordial/pkg/improv"
)

// Guest defines model for Guest.
type Guest struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Hash string    `json:"hash"`
}

// PasswordPolicy defines model for PasswordPolicy. Fields left out of a
// request keep the default policy's values.
type PasswordPolicy struct {
	Length    int  `json:"length"`
	Numbers   bool `json:"numbers"`
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Symbols   bool `json:"symbols"`
	Spaces    bool `json:"spaces"`
	Exclude   bool `json:"exclude"`
	Strict    bool `json:"strict"`
}

func NewGuestFromModel(g models.Guest) Guest {
	return Guest{Id: g.ID, Name: g.Name, Hash: g.Hash}
}

func NewGuestsFromModel(guests []models.Guest) []Guest {
	out := make([]Guest, 0, len(guests))
	for _, g := range guests {
		out = append(out, NewGuestFromModel(g))
	}
	return out
}

func (g Guest) ToModel() models.Guest {
	return models.Guest{ID: g.Id, Name: g.Name, Hash: g.Hash}
}

// DefaultPasswordPolicy is the starting point a request body is decoded onto.
func DefaultPasswordPolicy() PasswordPolicy {
	p := improv.DefaultPolicy()
	return PasswordPolicy{
		Length:    p.Length,
		Numbers:   p.Numbers,
		Lowercase: p.Lowercase,
		Uppercase: p.Uppercase,
		Symbols:   p.Symbols,
		Spaces:    p.Spaces,
		Exclude:   p.Exclude,
		Strict:    p.Strict,
	}
}

func (p PasswordPolicy) ToPolicy() improv.Policy {
	return improv.Policy{
		Length:    p.Length,
		Numbers:   p.Numbers,
		Lowercase: p.Lowercase,
		Uppercase: p.Uppercase,
		Symbols:   p.Symbols,
		Spaces:    p.Spaces,
		Exclude:   p.Exclude,
		Strict:    p.Strict,
	}
}
