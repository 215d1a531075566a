package dialect

import "strings"

// Junos returns a profile tuned for Juniper-Junos-like syntax: curly-brace
// stanza headers ("interfaces {", "ge-0/0/0 {") and flat "set ..."
// statement lines, whitespace tokenization, and "#" as the only comment
// marker ("!" is not a comment marker under this profile).
func Junos() Profile {
	return Profile{
		Name:           "junos",
		CommentMarkers: []string{"#"},
		Tokenize:       genericTokenize,
		KeyHint:        junosKeyHint,
	}
}

// junosKeyHint recognizes two shapes:
//   - a stanza header ending in "{": the key is the header name itself,
//     e.g. "ge-0/0/0 {" keys on "ge-0/0/0".
//   - a "set <path...> <value>" statement: the key is the path, excluding
//     the trailing value, so replacing just the value still anchors to
//     the same stanza under keyed-stable matching.
func junosKeyHint(_ string, head string, args []string) (string, bool) {
	if head == "set" && len(args) >= 2 {
		return strings.Join(args[:len(args)-1], " "), true
	}
	if len(args) > 0 && args[len(args)-1] == "{" {
		if len(args) == 1 {
			return head, true
		}
		return head + " " + strings.Join(args[:len(args)-1], " "), true
	}
	return "", false
}
