package charset

import (
	"slices"

	"github.com/samber/lo"
)

const (
	// UpperCase contains the upper case letters.
	UpperCase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// LowerCase contains the lower case letters.
	LowerCase = "abcdefghijklmnopqrstuvwxyz"
	// Numbers contains the decimal digits.
	Numbers = "0123456789"
	// Symbols contains the supported special characters.
	Symbols = "!@#$%^&*()"
)

// Class is a named alphabet.
type Class struct {
	Name     string
	Alphabet string
}

// Size returns the number of characters of the class alphabet.
func (c Class) Size() int {
	return len(c.Alphabet)
}

var (
	upper   = Class{Name: "upper case", Alphabet: UpperCase}
	lower   = Class{Name: "lower case", Alphabet: LowerCase}
	numbers = Class{Name: "numbers", Alphabet: Numbers}
	symbols = Class{Name: "symbols", Alphabet: Symbols}
)

// All returns the four classes in fixed order.
func All() []Class {
	return []Class{upper, lower, numbers, symbols}
}

// Selection holds which classes take part in a password.
type Selection struct {
	Upper   bool
	Lower   bool
	Numbers bool
	Symbols bool
}

// Everything selects all four classes.
func Everything() Selection {
	return Selection{Upper: true, Lower: true, Numbers: true, Symbols: true}
}

// None reports whether no class is selected.
func (s Selection) None() bool {
	return !s.Upper && !s.Lower && !s.Numbers && !s.Symbols
}

// WithDefaults returns Everything when no class is selected. The boolean is true
// if the defaults were applied.
func (s Selection) WithDefaults() (Selection, bool) {
	if s.None() {
		return Everything(), true
	}

	return s, false
}

// Classes returns the selected classes in fixed order.
func (s Selection) Classes() []Class {
	var classes []Class

	if s.Upper {
		classes = append(classes, upper)
	}

	if s.Lower {
		classes = append(classes, lower)
	}

	if s.Numbers {
		classes = append(classes, numbers)
	}

	if s.Symbols {
		classes = append(classes, symbols)
	}

	return classes
}

// Names returns the names of the selected classes.
func (s Selection) Names() []string {
	return lo.Map(s.Classes(), func(c Class, _ int) string {
		return c.Name
	})
}

// Size returns the number of possible characters per position, the sum of the
// sizes of all selected classes.
func (s Selection) Size() int {
	return lo.SumBy(s.Classes(), Class.Size)
}

// Set is a deduplicated collection of characters.
type Set []byte

// Len returns the number of distinct characters.
func (s Set) Len() int {
	return len(s)
}

// Contains reports whether c is part of the set.
func (s Set) Contains(c byte) bool {
	return slices.Contains(s, c)
}

// String returns the characters of the set.
func (s Set) String() string {
	return string(s)
}

// Assemble returns the union of all selected alphabets. Characters shared by
// several classes are kept once. An empty selection gives an empty set.
func Assemble(sel Selection) Set {
	var chars []byte

	for _, c := range sel.Classes() {
		chars = append(chars, c.Alphabet...)
	}

	set := lo.Uniq(chars)
	slices.Sort(set)

	return set
}
