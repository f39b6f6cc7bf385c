// Package versions parses dotted dependency version strings and orders them.
//
// A version is split on dots into components. Each component is an optional
// numeric prefix followed by an optional alphanumeric label, so "5", "0rc1"
// and "dev" are all valid components. Ordering rules:
//
//   - components are compared left to right;
//   - a missing trailing component compares as 0, so "5", "5.0" and "5.0.0"
//     are equal;
//   - numeric prefixes are compared first, a component without one ("dev")
//     sorts before any number;
//   - on equal numbers a component without a label sorts after one with a
//     label, so "5.0rc1" < "5.0";
//   - labels compare byte-wise.
//
// Every version boundary check in the module goes through Compare.
package versions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion is returned for strings that cannot be parsed.
var ErrInvalidVersion = errors.New("versions: invalid version")

// noNumber marks a component without a numeric prefix.
const noNumber = -1

// Component is one dot-separated part of a version.
type Component struct {
	Number int
	Label  string
}

// IsNumeric reports whether the component is a plain number.
func (c Component) IsNumeric() bool {
	return c.Number != noNumber && c.Label == ""
}

func (c Component) String() string {
	if c.Number == noNumber {
		return c.Label
	}

	return strconv.Itoa(c.Number) + c.Label
}

// Version is a parsed version string.
type Version []Component

// Parse parses a dotted version string.
func Parse(s string) (Version, error) {
	text := strings.TrimSpace(s)
	if len(text) > 1 && (text[0] == 'v' || text[0] == 'V') && isDigit(text[1]) {
		text = text[1:]
	}

	if text == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidVersion)
	}

	tokens := strings.Split(text, ".")
	v := make(Version, 0, len(tokens))

	for i, token := range tokens {
		c, err := parseComponent(token)
		if err != nil {
			return nil, fmt.Errorf("%w %q: component %d: %w", ErrInvalidVersion, s, i, err)
		}

		v = append(v, c)
	}

	return v, nil
}

// MustParse is Parse for constants; it panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

func parseComponent(token string) (Component, error) {
	if token == "" {
		return Component{}, errors.New("empty component")
	}

	split := 0
	for split < len(token) && isDigit(token[split]) {
		split++
	}

	for i := split; i < len(token); i++ {
		if !isAlnum(token[i]) {
			return Component{}, fmt.Errorf("unexpected character %q in %q", token[i], token)
		}
	}

	c := Component{Number: noNumber, Label: token[split:]}

	if split > 0 {
		n, err := strconv.Atoi(token[:split])
		if err != nil {
			return Component{}, fmt.Errorf("number out of range in %q", token)
		}

		c.Number = n
	}

	return c, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlnum(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// String joins the components back with dots.
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = c.String()
	}

	return strings.Join(parts, ".")
}

// Compare returns -1, 0 or +1.
func (v Version) Compare(other Version) int {
	n := max(len(v), len(other))

	for i := 0; i < n; i++ {
		if d := compareComponent(v.at(i), other.at(i)); d != 0 {
			return d
		}
	}

	return 0
}

// Less reports v < other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// AtLeast reports v >= other.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}

// Equal reports whether both versions compare equal, padding included.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) at(i int) Component {
	if i < len(v) {
		return v[i]
	}

	return Component{Number: 0}
}

func compareComponent(a, b Component) int {
	if a.Number != b.Number {
		if a.Number < b.Number {
			return -1
		}

		return 1
	}

	switch {
	case a.Label == b.Label:
		return 0
	case a.Label == "":
		return 1
	case b.Label == "":
		return -1
	case a.Label < b.Label:
		return -1
	default:
		return 1
	}
}

// Compare parses both strings and compares them.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}

	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}

	return va.Compare(vb), nil
}

// Tuplify turns "1.8.rc1" into []any{1, 8, "rc1"}: plain numbers become
// ints, anything else stays a string.
func Tuplify(s string) ([]any, error) {
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}

	tuple := make([]any, len(v))
	for i, c := range v {
		if c.IsNumeric() {
			tuple[i] = c.Number
		} else {
			tuple[i] = c.String()
		}
	}

	return tuple, nil
}

// Detuplify is the inverse of Tuplify.
func Detuplify(tuple []any) string {
	parts := make([]string, len(tuple))
	for i, part := range tuple {
		parts[i] = fmt.Sprint(part)
	}

	return strings.Join(parts, ".")
}
