package pajek

import (
	"bufio"
	"fmt"
	"io"

	"github.com/networkee/ergmee/core"
)

// WriteGraph renders g in the same Pajek `.net` dialect ReadGraph accepts:
// a `*vertices` header (with a second token for bipartite graphs), then
// `*arcs` or `*edges` and one `i j` line per edge, 1-based and in
// EdgeList's deterministic order.
func WriteGraph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	if g.Bipartite() {
		if _, err := fmt.Fprintf(bw, "*vertices %d %d\n", g.N(), g.ModeACount()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(bw, "*vertices %d\n", g.N()); err != nil {
			return err
		}
	}

	section := "*edges"
	if g.Directed() {
		section = "*arcs"
	}
	if _, err := fmt.Fprintln(bw, section); err != nil {
		return err
	}

	for _, e := range g.EdgeList() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.From+1, e.To+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SnapshotName returns the `<prefix>_<i>.net` filename spec.md §6 specifies
// for persisted simulator graph snapshots.
func SnapshotName(prefix string, i int) string {
	return fmt.Sprintf("%s_%d.net", prefix, i)
}
