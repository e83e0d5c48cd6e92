package provision

// State is a step of identifier resolution
type State int

const (
	// Unresolved: nothing looked up yet
	Unresolved State = iota
	// Cached: an identifier came from the key-value store and awaits verification
	Cached
	// Verified: the identifier points at a live resource (terminal)
	Verified
	// NotFound: no usable cached identifier; search, then create
	NotFound
	// Created: a new resource was made (terminal)
	Created
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Cached:
		return "cached"
	case Verified:
		return "verified"
	case NotFound:
		return "not_found"
	case Created:
		return "created"
	}
	return "unknown"
}

// Terminal reports whether resolution stops at s
func (s State) Terminal() bool {
	return s == Verified || s == Created
}
