package improv

import (
	"fmt"
	"math/rand/v2"

	"github.com/cordial-dev/cordial/internal/models"
	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

// Improv makes up guest names and passwords.
type Improv struct {
	numbered   bool
	adjectives []string
	nouns      []string
	policy     Policy
}

type Option func(*Improv)

// WithPolicy sets the policy used by Pass and Passes.
func WithPolicy(p Policy) Option {
	return func(i *Improv) {
		i.policy = p
	}
}

// WithWords replaces the word lists names are drawn from.
func WithWords(adjectives, nouns []string) Option {
	return func(i *Improv) {
		i.adjectives = adjectives
		i.nouns = nouns
	}
}

// New returns a generator of adjective-noun names. Numbered names carry a
// four digit suffix, e.g. "quiet-otter-0417".
func New(numbered bool, opts ...Option) *Improv {
	i := &Improv{
		numbered:   numbered,
		adjectives: defaultAdjectives,
		nouns:      defaultNouns,
		policy:     DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Improv) Policy() Policy {
	return i.policy
}

func (i *Improv) Name() (string, error) {
	if len(i.adjectives) == 0 || len(i.nouns) == 0 {
		return "", srvErrors.NewGeneratorError("failed to generate name: word list is empty")
	}
	name := i.adjectives[rand.IntN(len(i.adjectives))] + "-" + i.nouns[rand.IntN(len(i.nouns))]
	if i.numbered {
		name = fmt.Sprintf("%s-%04d", name, rand.IntN(10000))
	}
	return name, nil
}

func (i *Improv) Names(count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for len(names) < count {
		name, err := i.Name()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Pass generates one password under the configured policy.
func (i *Improv) Pass() (string, error) {
	return i.policy.Generate()
}

func (i *Improv) Passes(count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	passes := make([]string, 0, count)
	for len(passes) < count {
		pass, err := i.policy.Generate()
		if err != nil {
			return nil, err
		}
		passes = append(passes, pass)
	}
	return passes, nil
}

// Guest returns a new guest with a made-up name and a password as its hash.
func (i *Improv) Guest() (models.Guest, error) {
	name, err := i.Name()
	if err != nil {
		return models.Guest{}, err
	}
	pass, err := i.Pass()
	if err != nil {
		return models.Guest{}, err
	}
	return models.NewGuest(name, pass), nil
}

func (i *Improv) Guests(count int) ([]models.Guest, error) {
	names, err := i.Names(count)
	if err != nil {
		return nil, err
	}
	passes, err := i.Passes(count)
	if err != nil {
		return nil, err
	}
	guests := make([]models.Guest, 0, count)
	for n := range count {
		guests = append(guests, models.NewGuest(names[n], passes[n]))
	}
	return guests, nil
}

func checkCount(count int) error {
	if count < 0 {
		return srvErrors.NewGeneratorError("count must not be negative, got %d", count)
	}
	return nil
}
