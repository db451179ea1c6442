package catalog

import (
	"fmt"
	"strings"
)

// ParseMember parses a set member token of the form
//
//	NAME
//	NAME | key=value,key=value
//
// A name may not contain '|'; a token with more than one '|' is rejected
// rather than guessed at.
func ParseMember(token string) (Member, error) {
	name, opts, hasOpts := strings.Cut(token, "|")
	name = strings.TrimSpace(name)
	if name == "" {
		return Member{}, fmt.Errorf("%w: empty name in %q", ErrInvalidMember, token)
	}
	if strings.ContainsAny(name, " \t") {
		return Member{}, fmt.Errorf("%w: name %q contains whitespace", ErrInvalidMember, name)
	}
	m := Member{Name: name}
	if !hasOpts {
		return m, nil
	}
	if strings.Contains(opts, "|") {
		return Member{}, fmt.Errorf("%w: more than one '|' in %q", ErrInvalidMember, token)
	}

	m.Options = make(map[string]string)
	for _, item := range strings.Split(opts, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		k, v, ok := strings.Cut(item, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return Member{}, fmt.Errorf("%w: option %q in %q is not key=value", ErrInvalidMember, item, token)
		}
		m.Options[k] = strings.TrimSpace(v)
	}
	return m, nil
}
