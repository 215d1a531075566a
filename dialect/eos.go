package dialect

// EOS returns a profile tuned for Arista-EOS-like syntax: "interface
// Ethernet1" / "vlan 10" stanza headers, whitespace tokenization, and
// default comment markers.
func EOS() Profile {
	return Profile{
		Name:           "eos",
		CommentMarkers: []string{"!", "#"},
		Tokenize:       genericTokenize,
		KeyHint:        eosKeyHint,
	}
}

func eosKeyHint(_ string, head string, args []string) (string, bool) {
	switch head {
	case "interface", "vlan":
		if len(args) > 0 {
			return head + " " + args[0], true
		}
	}
	return "", false
}
