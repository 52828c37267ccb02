package navigation

import "strings"

// MatchPolicy decides whether a menu entry corresponds to a location.
type MatchPolicy int

const (
	// MatchExactOrChild matches the target itself and anything below it,
	// except that the bare /admin root never claims its children.
	MatchExactOrChild MatchPolicy = iota
	// MatchPrefix matches any location starting with the target, siblings
	// sharing a prefix included (/gm/requests2 matches /gm/requests).
	MatchPrefix
)

func (p MatchPolicy) String() string {
	switch p {
	case MatchExactOrChild:
		return "exact_or_child"
	case MatchPrefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// IsActive reports whether entryPath is active for currentPath.
func (p MatchPolicy) IsActive(currentPath, entryPath string) bool {
	switch p {
	case MatchPrefix:
		return strings.HasPrefix(currentPath, entryPath)
	default:
		if currentPath == entryPath {
			return true
		}
		return entryPath != adminPrefix && strings.HasPrefix(currentPath, entryPath+"/")
	}
}

// IsActive applies the exact-or-child policy.
func IsActive(currentPath, entryPath string) bool {
	return MatchExactOrChild.IsActive(currentPath, entryPath)
}

// ResolvedEntry is a menu entry annotated for one location.
type ResolvedEntry struct {
	MenuEntry
	Active bool `json:"active"`
}

// Resolve annotates entries for currentPath. At most one entry is active:
// among the matching entries the longest target wins and equal lengths keep
// catalog order.
func Resolve(entries []MenuEntry, currentPath string, policy MatchPolicy) []ResolvedEntry {
	resolved := make([]ResolvedEntry, len(entries))
	best := -1
	for i, entry := range entries {
		resolved[i] = ResolvedEntry{MenuEntry: entry}
		if !policy.IsActive(currentPath, entry.Target) {
			continue
		}
		if best < 0 || len(entry.Target) > len(entries[best].Target) {
			best = i
		}
	}
	if best >= 0 {
		resolved[best].Active = true
	}
	return resolved
}

// ActiveIndex returns the position of the active entry, or -1.
func ActiveIndex(entries []ResolvedEntry) int {
	for i, entry := range entries {
		if entry.Active {
			return i
		}
	}
	return -1
}
