// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapper

import "strings"

// PersonName holds the split parts of a personal name. The zero value means
// the source name was blank and no Person fields should be emitted.
type PersonName struct {
	Name       string
	GivenName  string
	FamilyName string
}

// IsZero reports whether no name was parsed.
func (n PersonName) IsZero() bool {
	return n.Name == ""
}

// ParsePersonName splits a full name into given and family parts. It splits
// on whitespace: the last token is the family name, everything before it the
// given name. A single token becomes the given name with no family name.
// Honorifics and multi-word family names are not handled; the heuristic is
// intentionally naive because the source data carries no structure to do
// better.
func ParsePersonName(name string) PersonName {
	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return PersonName{}
	case 1:
		return PersonName{Name: tokens[0], GivenName: tokens[0]}
	default:
		return PersonName{
			Name:       strings.Join(tokens, " "),
			GivenName:  strings.Join(tokens[:len(tokens)-1], " "),
			FamilyName: tokens[len(tokens)-1],
		}
	}
}
