package effect

import (
	"github.com/networkee/ergmee/attr"
	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/twopath"
)

// Context bundles read-only access to the current model state. Effects
// must treat every field as immutable: Δz is evaluated against the
// pre-toggle state, and StatDirect may be called at any point in a chain's
// lifetime.
type Context struct {
	G     *core.Graph
	Cache twopath.Cache
	Attrs *attr.Store
}
