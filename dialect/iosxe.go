package dialect

// IOSXE returns a profile tuned for Cisco-IOS-XE-like syntax: "interface
// GigabitEthernet0/1" stanza headers, whitespace tokenization, and
// default comment markers.
func IOSXE() Profile {
	return Profile{
		Name:           "iosxe",
		CommentMarkers: []string{"!", "#"},
		Tokenize:       genericTokenize,
		KeyHint:        iosxeKeyHint,
	}
}

func iosxeKeyHint(_ string, head string, args []string) (string, bool) {
	switch head {
	case "interface", "vlan":
		if len(args) > 0 {
			return head + " " + args[0], true
		}
	case "router":
		if len(args) > 0 {
			return head + " " + args[0], true
		}
	}
	return "", false
}
