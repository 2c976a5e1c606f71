package attr

import "fmt"

// Kind discriminates the four attribute value domains.
type Kind uint8

const (
	Binary Kind = iota
	Categorical
	Continuous
	Set
)

func (k Kind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Categorical:
		return "categorical"
	case Continuous:
		return "continuous"
	case Set:
		return "set"
	default:
		return "unknown"
	}
}

// Attribute holds one named per-node covariate. Exactly one of the typed
// slices is populated, selected by Kind; na marks entries that carry no
// value regardless of Kind, so every accessor must be NA-checked before use.
type Attribute struct {
	name        string
	kind        Kind
	binary      []int8
	categorical []int
	continuous  []float64
	setValued   [][]int
	na          []bool
}

// Name returns the attribute's registry key.
func (a *Attribute) Name() string { return a.name }

// Kind returns the attribute's value domain.
func (a *Attribute) Kind() Kind { return a.kind }

// IsNA reports whether node i carries no value for this attribute.
func (a *Attribute) IsNA(i int) bool { return a.na[i] }

// Binary returns node i's 0/1 value. Panics if Kind is not Binary. An NA
// value is not detected here: the stored placeholder is returned, so
// callers guard with IsNA first.
func (a *Attribute) Binary(i int) int8 {
	a.mustKind(Binary)

	return a.binary[i]
}

// Categorical returns node i's category label.
func (a *Attribute) Categorical(i int) int {
	a.mustKind(Categorical)

	return a.categorical[i]
}

// Continuous returns node i's scalar covariate value.
func (a *Attribute) Continuous(i int) float64 {
	a.mustKind(Continuous)

	return a.continuous[i]
}

// Set returns node i's set of category labels, sorted ascending. The
// returned slice must not be mutated by the caller.
func (a *Attribute) Set(i int) []int {
	a.mustKind(Set)

	return a.setValued[i]
}

func (a *Attribute) mustKind(want Kind) {
	if a.kind != want {
		panic(fmt.Sprintf("attr: %s is %s, not %s", a.name, a.kind, want))
	}
}
