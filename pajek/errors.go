package pajek

import "errors"

var (
	// ErrMissingVertices indicates a `.net` file lacking a `*vertices` header.
	ErrMissingVertices = errors.New("pajek: missing *vertices header")

	// ErrMissingEdgeSection indicates a `.net` file lacking both `*arcs` and
	// `*edges` sections.
	ErrMissingEdgeSection = errors.New("pajek: missing *arcs or *edges section")

	// ErrMalformedLine indicates a line that cannot be parsed in its
	// section's expected shape.
	ErrMalformedLine = errors.New("pajek: malformed line")

	// ErrNodeIndexOutOfRange indicates a 1-based file index outside [1,N].
	ErrNodeIndexOutOfRange = errors.New("pajek: node index out of range")

	// ErrAttributeCountMismatch indicates an attribute file whose line
	// count does not match the graph's node count.
	ErrAttributeCountMismatch = errors.New("pajek: attribute row count does not match node count")

	// ErrAttributeFieldMismatch indicates a data row whose field count
	// does not match the header's.
	ErrAttributeFieldMismatch = errors.New("pajek: attribute row field count does not match header")

	// ErrUnknownAttributeKind indicates an attribute column whose values
	// cannot be classified as binary, categorical, continuous, or set.
	ErrUnknownAttributeKind = errors.New("pajek: cannot classify attribute column")
)
