package dialect

import "fmt"

// Registry maps dialect names to profiles, used by both the CLI --dialect
// flag and tests. Adding a fifth dialect means adding one entry here.
var registry = map[string]func() Profile{
	"generic": Generic,
	"eos":     EOS,
	"iosxe":   IOSXE,
	"junos":   Junos,
}

// Names returns the registered dialect names, in a stable order.
func Names() []string {
	return []string{"generic", "eos", "iosxe", "junos"}
}

// Lookup returns the named profile, or an error if name isn't registered.
// An empty name selects the generic profile.
func Lookup(name string) (Profile, error) {
	if name == "" {
		return Generic(), nil
	}
	if mk, ok := registry[name]; ok {
		return mk(), nil
	}
	return Profile{}, fmt.Errorf("dialect: unknown profile %q", name)
}
