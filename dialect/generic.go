package dialect

import "strings"

// Generic returns the default profile: default comment markers (!, #), a
// whitespace-splitting tokenizer, and no key hints.
func Generic() Profile {
	return Profile{
		Name:           "generic",
		CommentMarkers: []string{"!", "#"},
		Tokenize:       genericTokenize,
		KeyHint:        noKeyHint,
	}
}

// genericTokenize splits on runs of whitespace. It never fails to
// tokenize a non-blank line (the first field becomes head), so under the
// generic profile a Content line is only ever promoted to Unknown by a
// dialect tokenizer that's stricter than this one.
func genericTokenize(raw string) (head string, args []string, ok bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}
