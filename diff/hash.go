package diff

import "hash/fnv"

// hashLine hashes a line's normalized text into the content key used as
// the Myers equality predicate. Grounded on the same fnv-1a choice as
// flatten.CompLine.ContentKey (see DESIGN.md): no third-party hashing
// library appears anywhere in the example corpus, so this stays stdlib.
func hashLine(normalized string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(normalized))
	return h.Sum64()
}
