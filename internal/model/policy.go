package model

import (
	"sort"
	"strings"
)

// Wildcard is the token matching every id or family.
const Wildcard = "*"

type ruleKind uint8

const (
	ruleNone ruleKind = iota
	ruleAll
	ruleSet
)

// Rule is one selection policy field: None (matches nothing), Wildcard
// (matches everything) or an explicit set of literals. The zero value is None.
type Rule struct {
	kind  ruleKind
	names map[string]struct{}
}

// NoneRule matches nothing.
func NoneRule() Rule {
	return Rule{}
}

// WildcardRule matches everything.
func WildcardRule() Rule {
	return Rule{kind: ruleAll}
}

// RuleOf builds an explicit set. An empty set matches nothing but is still
// distinct from None when rendered.
func RuleOf(names ...string) Rule {
	rule := Rule{kind: ruleSet, names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		rule.names[name] = struct{}{}
	}

	return rule
}

// Matches reports whether name is selected by the rule.
func (r Rule) Matches(name string) bool {
	switch r.kind {
	case ruleAll:
		return true
	case ruleSet:
		_, ok := r.names[name]
		return ok
	default:
		return false
	}
}

// IsNone reports whether the rule is None.
func (r Rule) IsNone() bool {
	return r.kind == ruleNone
}

// IsWildcard reports whether the rule matches everything.
func (r Rule) IsWildcard() bool {
	return r.kind == ruleAll
}

// Names returns the explicit literals, sorted. Nil for None and Wildcard.
func (r Rule) Names() []string {
	if r.kind != ruleSet {
		return nil
	}

	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// String renders the rule the way ParseRule accepts it.
func (r Rule) String() string {
	switch r.kind {
	case ruleAll:
		return Wildcard
	case ruleSet:
		return strings.Join(r.Names(), ",")
	default:
		return "none"
	}
}

// Merge returns the union of two rules. Wildcard absorbs everything and None
// is the identity.
func (r Rule) Merge(other Rule) Rule {
	if r.kind == ruleAll || other.kind == ruleAll {
		return WildcardRule()
	}

	if other.kind == ruleNone {
		return r
	}

	if r.kind == ruleNone {
		return other
	}

	return RuleOf(append(r.Names(), other.Names()...)...)
}

// ParseRule reads the textual form used on the command line: "*" for the
// wildcard, "none" (or nothing) for None, otherwise comma separated literals.
func ParseRule(text string) Rule {
	s := strings.TrimSpace(text)
	switch strings.ToLower(s) {
	case "", "none", "null":
		return NoneRule()
	case Wildcard:
		return WildcardRule()
	}

	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))

	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		if name == Wildcard {
			return WildcardRule()
		}

		names = append(names, name)
	}

	return RuleOf(names...)
}

// Policy is the include/exclude configuration filtering relevant fixers.
type Policy struct {
	IncludeIDs      Rule
	IncludeFamilies Rule
	ExcludeIDs      Rule
	ExcludeFamilies Rule
}

// Includes reports whether the fixer passes the inclusion gate.
func (p Policy) Includes(f Fixer) bool {
	return p.IncludeIDs.Matches(f.ID) || p.IncludeFamilies.Matches(f.Family)
}

// Excludes reports whether the fixer is dropped by the exclusion gate.
func (p Policy) Excludes(f Fixer) bool {
	return p.ExcludeIDs.Matches(f.ID) || p.ExcludeFamilies.Matches(f.Family)
}
