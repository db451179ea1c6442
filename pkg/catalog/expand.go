package catalog

import (
	"fmt"
	"strings"
)

// Suffixes recognised by the reference expander.
const (
	DefSuffix = "_DEF"
	RefSuffix = "_REF"
)

// IsDefinition reports whether a property-set key names a definition list.
func IsDefinition(key string) bool {
	return strings.HasSuffix(key, DefSuffix)
}

// IsReference reports whether a member token refers to a definition list.
func IsReference(token string) bool {
	return strings.HasSuffix(token, RefSuffix)
}

// DefinitionFor returns the definition key a reference token points to.
func DefinitionFor(ref string) string {
	return strings.TrimSuffix(ref, RefSuffix) + DefSuffix
}

// Expand resolves _REF members against _DEF lists. Definition keys are
// dropped from the result; every other set keeps its order, with each
// reference replaced in place by the referenced list. Duplicates are kept.
//
// Expansion is single-level: a definition list containing a reference is an
// error, as is a reference without a matching definition.
func Expand(sets map[string][]string) (map[string][]string, error) {
	defs := make(map[string][]string)
	for key, tokens := range sets {
		if !IsDefinition(key) {
			continue
		}
		for _, tok := range tokens {
			if IsReference(tok) {
				return nil, fmt.Errorf("%w: definition %s contains %s", ErrNestedRef, key, tok)
			}
		}
		defs[key] = tokens
	}

	out := make(map[string][]string, len(sets)-len(defs))
	for key, tokens := range sets {
		if IsDefinition(key) {
			continue
		}
		expanded := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if !IsReference(tok) {
				expanded = append(expanded, tok)
				continue
			}
			def, ok := defs[DefinitionFor(tok)]
			if !ok {
				return nil, fmt.Errorf("%w: %s in set %s (no %s)", ErrUnresolvedRef, tok, key, DefinitionFor(tok))
			}
			expanded = append(expanded, def...)
		}
		out[key] = expanded
	}
	return out, nil
}
