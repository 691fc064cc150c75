package css

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Declaration is either static (applied as-is) or dynamic: looked up in the
// per-node overrides by DynamicID, falling back to Default.
type Declaration struct {
	DynamicID string
	Property  Property
}

// Static returns a declaration that is always applied directly.
func Static(p Property) Declaration {
	return Declaration{Property: p}
}

// Dynamic returns a declaration that may be overridden per node at runtime.
func Dynamic(id string, def Property) Declaration {
	return Declaration{DynamicID: id, Property: def}
}

// IsDynamic reports whether the declaration can be overridden.
func (d Declaration) IsDynamic() bool {
	return d.DynamicID != ""
}

// Selector is a simple compound selector: optional node type, optional id and
// any number of classes. "*" matches everything.
type Selector struct {
	Type    string
	ID      string
	Classes []string
}

// ParseSelector parses selectors like "div", "#main", ".a.b" or "p#x.y".
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("empty selector: %w", ErrInvalidValue)
	}
	if strings.ContainsAny(s, " >+~[:") {
		return Selector{}, fmt.Errorf("unsupported selector %q: %w", s, ErrInvalidValue)
	}
	var sel Selector
	i := 0
	next := func() string {
		j := i
		for j < len(s) && s[j] != '.' && s[j] != '#' {
			j++
		}
		tok := s[i:j]
		i = j
		return tok
	}
	if s[0] != '.' && s[0] != '#' {
		sel.Type = next()
		if sel.Type == "*" {
			sel.Type = ""
		}
	}
	for i < len(s) {
		marker := s[i]
		i++
		tok := next()
		if tok == "" {
			return Selector{}, fmt.Errorf("empty name in selector %q: %w", s, ErrInvalidValue)
		}
		if marker == '#' {
			sel.ID = tok
		} else {
			sel.Classes = append(sel.Classes, tok)
		}
	}
	return sel, nil
}

// Specificity returns the (ids, classes, types) specificity packed into one int.
func (s Selector) Specificity() int {
	score := len(s.Classes) * 100
	if s.ID != "" {
		score += 10000
	}
	if s.Type != "" {
		score++
	}
	return score
}

// Matches reports whether a node with the given type name, ids and classes
// is selected.
func (s Selector) Matches(nodeType string, ids, classes []string) bool {
	if s.Type != "" && s.Type != nodeType {
		return false
	}
	if s.ID != "" && !slices.Contains(ids, s.ID) {
		return false
	}
	for _, c := range s.Classes {
		if !slices.Contains(classes, c) {
			return false
		}
	}
	return true
}

// Rule pairs a selector with its declarations.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// Matching returns the declarations that apply to a node in cascade order:
// lower specificity first, source order within equal specificity.
func (s *Stylesheet) Matching(nodeType string, ids, classes []string) []Declaration {
	if s == nil {
		return nil
	}
	type match struct {
		specificity, order int
		decls              []Declaration
	}
	var matches []match
	for i, r := range s.Rules {
		if r.Selector.Matches(nodeType, ids, classes) {
			matches = append(matches, match{specificity: r.Selector.Specificity(), order: i, decls: r.Declarations})
		}
	}
	slices.SortStableFunc(matches, func(a, b match) int {
		if c := cmp.Compare(a.specificity, b.specificity); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
	var out []Declaration
	for _, m := range matches {
		out = append(out, m.decls...)
	}
	return out
}
