package mask

// ResolutionKind tags how a token was resolved.
type ResolutionKind int

const (
	// Unresolved means no value was found; the renderer applies its Policy.
	Unresolved ResolutionKind = iota
	// Resolved means a single field supplied the value.
	Resolved
	// CompositeResolved means the value was assembled from a date and an hour field.
	CompositeResolved
)

func (k ResolutionKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case CompositeResolved:
		return "composite"
	default:
		return "unresolved"
	}
}

// Resolution is the outcome of resolving one token against a ValueMap.
type Resolution struct {
	Kind ResolutionKind
	// Raw is the bracket text including the brackets, e.g. "[DATA/HORA 2]".
	Raw string
	// Key is the value-map key that produced Value. Empty when unresolved.
	Key string
	// Value is the replacement text. Empty when unresolved; may be empty for a
	// composite whose parts are both blank.
	Value string
}

// Step names one attempt in the resolution chain, for diagnostics.
type Step struct {
	Key   string
	Found bool
}
