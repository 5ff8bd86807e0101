package improv

import (
	"strings"

	"github.com/sethvargo/go-password/password"

	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	symbols      = "!#$%&()*+,-./:;<=>?@[]^_{}~"
	similar      = "iIlLoO01|`'\""

	maxStrictAttempts = 256

	// MaxLength bounds the length of a single generated password.
	MaxLength = 1024
)

// Policy controls which characters a generated password may contain.
type Policy struct {
	Length    int  `json:"length"`
	Numbers   bool `json:"numbers"`
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Symbols   bool `json:"symbols"`
	Spaces    bool `json:"spaces"`
	// Exclude drops look-alike characters such as 'l', '1' and 'O'.
	Exclude bool `json:"exclude"`
	// Strict requires at least one character of every enabled class.
	Strict bool `json:"strict"`
}

// DefaultPolicy is eight characters of lowercase letters and digits.
func DefaultPolicy() Policy {
	return Policy{
		Length:    8,
		Numbers:   true,
		Lowercase: true,
	}
}

// Generate returns one password satisfying p.
func (p Policy) Generate() (string, error) {
	if p.Length <= 0 {
		return "", srvErrors.NewGeneratorError("password length must be positive, got %d", p.Length)
	}
	if p.Length > MaxLength {
		return "", srvErrors.NewGeneratorError("password length must be at most %d, got %d", MaxLength, p.Length)
	}
	required := p.enabledClasses()
	if required == 0 {
		return "", srvErrors.NewGeneratorError("at least one character class must be enabled")
	}
	if p.Strict && p.Length < required {
		return "", srvErrors.NewGeneratorError("length %d cannot hold one character of each of %d classes", p.Length, required)
	}

	lower, upper, nums, syms := p.charsets()
	gen, err := password.NewGenerator(&password.GeneratorInput{
		LowerLetters: lower,
		UpperLetters: upper,
		Digits:       nums,
		Symbols:      syms,
	})
	if err != nil {
		return "", srvErrors.WrapGeneratorError(err)
	}

	numDigits, numSymbols := p.distribution()
	noUpper := !(p.Lowercase && p.Uppercase)

	for range maxStrictAttempts {
		pass, err := gen.Generate(p.Length, numDigits, numSymbols, noUpper, true)
		if err != nil {
			return "", srvErrors.WrapGeneratorError(err)
		}
		if !p.Strict || p.satisfiedBy(pass) {
			return pass, nil
		}
	}
	return "", srvErrors.NewGeneratorError("failed to satisfy strict policy after %d attempts", maxStrictAttempts)
}

func (p Policy) enabledClasses() int {
	return countTrue(p.Numbers, p.Lowercase, p.Uppercase, p.Symbols, p.Spaces)
}

// charsets maps the policy onto the generator's four pools. The generator
// draws letters from lower, plus upper unless told otherwise, so an
// uppercase-only policy puts the upper set in both.
func (p Policy) charsets() (lower, upper, nums, syms string) {
	lower, upper, nums = lowerLetters, upperLetters, digits
	if p.Uppercase && !p.Lowercase {
		lower = upperLetters
	}

	if p.Symbols {
		syms = symbols
	}
	if p.Spaces {
		syms += " "
	}

	if p.Exclude {
		lower, upper, nums, syms = dropSimilar(lower), dropSimilar(upper), dropSimilar(nums), dropSimilar(syms)
	}
	// the generator falls back to its own pool for an empty set
	if syms == "" {
		syms = "#"
	}
	return lower, upper, nums, syms
}

// distribution splits Length between letters, digits and symbols.
func (p Policy) distribution() (numDigits, numSymbols int) {
	letters := p.Lowercase || p.Uppercase
	symbolic := p.Symbols || p.Spaces

	switch {
	case !letters && !p.Numbers:
		return 0, p.Length
	case !letters && !symbolic:
		return p.Length, 0
	case !letters:
		numDigits = p.Length / 2
		return numDigits, p.Length - numDigits
	}

	share := p.Length / 4
	if p.Numbers {
		numDigits = share
		if p.Strict && numDigits < 1 {
			numDigits = 1
		}
	}
	if symbolic {
		numSymbols = share
		if least := countTrue(p.Symbols, p.Spaces); p.Strict && numSymbols < least {
			numSymbols = least
		}
	}
	return numDigits, numSymbols
}

func (p Policy) satisfiedBy(pass string) bool {
	checks := []struct {
		enabled bool
		set     string
	}{
		{p.Numbers, digits},
		{p.Lowercase, lowerLetters},
		{p.Uppercase, upperLetters},
		{p.Symbols, symbols},
		{p.Spaces, " "},
	}
	for _, c := range checks {
		if c.enabled && !strings.ContainsAny(pass, c.set) {
			return false
		}
	}
	return true
}

func dropSimilar(set string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(similar, r) {
			return -1
		}
		return r
	}, set)
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
