package deps

import "strings"

type RefKind int

const (
	// RefPlain is a bare name referring to a target in the same build.
	RefPlain RefKind = iota
	// RefGenex is a generator-expression wrapper around a name.
	RefGenex
	// RefNamespaced is a Package::Member reference to an imported target.
	RefNamespaced
)

// Ref is the parsed form of one raw link-dependency string. Name is the
// usable target name after any unwrapping; Package and Member are filled
// whenever Name carries a namespace separator, regardless of Kind.
type Ref struct {
	Raw     string
	Kind    RefKind
	Name    string
	Package string
	Member  string
}

const namespaceSep = "::"

// ParseRef classifies a raw dependency string into one of the three
// reference shapes. Generator expressions are unwrapped to their inner
// name; the caller decides what to do when the inner name is not a target.
func ParseRef(raw string) Ref {
	ref := Ref{Raw: raw, Name: raw, Kind: RefPlain}
	if strings.HasPrefix(raw, "$<") {
		ref.Kind = RefGenex
		ref.Name = unwrapGenex(raw)
	} else if strings.Contains(raw, namespaceSep) {
		ref.Kind = RefNamespaced
	}
	if idx := strings.Index(ref.Name, namespaceSep); idx >= 0 {
		ref.Package = ref.Name[:idx]
		ref.Member = ref.Name[idx+len(namespaceSep):]
	}
	return ref
}

// unwrapGenex recovers the name inside a generator expression: the segment
// after the first ":" that follows the innermost "$<" opener, with the
// wrapper punctuation stripped. "$<LINK_ONLY:Qt5::Core>" yields
// "Qt5::Core". Nested or malformed expressions can leave artifacts behind;
// HasGenexArtifacts catches those downstream.
func unwrapGenex(s string) string {
	inner := s
	if idx := strings.LastIndex(s, "$<"); idx >= 0 {
		inner = s[idx+2:]
	}
	if idx := strings.Index(inner, ":"); idx >= 0 && !strings.HasPrefix(inner[idx:], namespaceSep) {
		inner = inner[idx+1:]
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '$', '<', '>':
			return -1
		}
		return r
	}, inner)
}

// HasGenexArtifacts reports whether a name still carries generator
// expression punctuation after unwrapping.
func HasGenexArtifacts(s string) bool {
	return strings.ContainsAny(s, "$<>")
}
