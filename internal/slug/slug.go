// Package slug derives unique, URL-safe identifiers from human-readable
// names within one entity collection's namespace.
package slug

import (
	"strconv"
	"strings"
)

// Generate lower-cases the name, collapses every run of non [a-z0-9]
// characters into a single hyphen and trims edge hyphens. An empty result
// falls back to "item". Collisions with existing get integer suffixes
// starting at -1. Callers must pass the id set current at mutation time, not
// a stale snapshot.
func Generate(name string, existing map[string]struct{}) string {
	base := normalize(name)
	if base == "" {
		base = "item"
	}
	candidate := base
	for i := 1; ; i++ {
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
}

func normalize(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
