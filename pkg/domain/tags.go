package domain

// Tag identifies the role of an input port. The set is closed: graph wiring
// is validated against these constants at construction time so that no tag
// lookup happens per invocation.
type Tag string

const (
	// TagMinuend marks the port carrying the matrix subtracted FROM.
	TagMinuend Tag = "MINUEND"
	// TagSubtrahend marks the port carrying the matrix being subtracted.
	TagSubtrahend Tag = "SUBTRAHEND"
)

// Valid reports whether t is one of the known tags.
func (t Tag) Valid() bool {
	return t == TagMinuend || t == TagSubtrahend
}
