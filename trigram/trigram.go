// Package trigram provides fuzzy matching of short names such as commands.
package trigram

import (
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

// Set indexer; zero value is valid.
type Set struct {
	// Mapping function used when calling Parse
	// or defaults to IsSpaceDigitLetterToLower if not set.
	Mapping func(rune) rune

	// Fields function used when calling Parse
	// or defaults to unicode.IsSpace if not set.
	Fields func(rune) bool

	ks []string   // sorted trigrams
	vs [][]string // sorted names per trigram
}

func (a *Set) defaults() {
	if a.Mapping == nil {
		a.Mapping = IsSpaceDigitLetterToLower
	}
	if a.Fields == nil {
		a.Fields = unicode.IsSpace
	}
}

// Index parses and stores trigrams for each s in xs.
func (a *Set) Index(xs ...string) {
	a.defaults()
	for _, s := range xs {
		for _, t := range Parse(s, a.Mapping, a.Fields) {
			i, ok := slices.BinarySearch(a.ks, t)
			if !ok {
				a.ks = slices.Insert(a.ks, i, t)
				a.vs = slices.Insert(a.vs, i, nil)
			}
			insert(&a.vs[i], s)
		}
	}
}

// Len returns the number of distinct trigrams indexed.
func (a Set) Len() int { return len(a.ks) }

// Match indexed values for x that meet min threshold; returns matches in
// ascending order and their unit scores, the share of x's trigrams each
// match holds.
func (a Set) Match(x string, min float64) ([]string, []float64) {
	a.defaults()
	var p []string
	var u []float64

	q := Parse(x, a.Mapping, a.Fields)
	for _, s := range q {
		i, ok := slices.BinarySearch(a.ks, s)
		if !ok {
			continue
		}
		for _, t := range a.vs[i] {
			j, ok := insert(&p, t)
			if ok {
				u = slices.Insert(u, j, 0)
			}
			u[j]++
		}
	}

	fp, fu := p[:0], u[:0]
	for i, s := range p {
		if w := u[i] / float64(len(q)); min <= w {
			fp, fu = append(fp, s), append(fu, w)
		}
	}
	return fp, fu
}

// Best returns the matches for x that meet min, highest score first; ties
// keep ascending order.
func (a Set) Best(x string, min float64) []string {
	m, u := a.Match(x, min)
	idx := make([]int, len(m))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) bool { return u[i] > u[j] })
	r := make([]string, len(idx))
	for i, j := range idx {
		r[i] = m[j]
	}
	return r
}

// Top returns the matches for x that meet min and share the highest score.
func (a Set) Top(x string, min float64) []string {
	m, u := a.Match(x, min)
	var r []string
	var top float64
	for i, s := range m {
		switch {
		case u[i] > top:
			r, top = append(r[:0], s), u[i]
		case u[i] == top:
			r = append(r, s)
		}
	}
	return r
}

// Parse returns a slice of trigrams for s after modifying characters according to
// the mapping function followed by word splitting according to fields function.
func Parse(s string, mapping func(rune) rune, fields func(rune) bool) []string {
	var p []string
	for _, t := range strings.FieldsFunc(strings.Map(mapping, s), fields) {
		t = "\x00\x00" + t + "\x00"
		for i := 0; i <= len(t)-3; i++ {
			insert(&p, t[i:i+3])
		}
	}
	return p
}

// insert x into sorted a if not present; returns x index and true if inserted.
func insert(a *[]string, x string) (int, bool) {
	i, ok := slices.BinarySearch(*a, x)
	if !ok {
		*a = slices.Insert(*a, i, x)
	}
	return i, !ok
}

// IsSpaceDigitLetterToLower reports whether rune is a letter, digit, or space character
// as defined by Unicode's White Space property and maps rune to lower case.
func IsSpaceDigitLetterToLower(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
		return unicode.ToLower(r)
	}
	return -1
}
