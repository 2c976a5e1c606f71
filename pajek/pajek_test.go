package pajek_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/networkee/ergmee/attr"
	"github.com/networkee/ergmee/pajek"
)

func TestReadGraph_Undirected(t *testing.T) {
	src := "*vertices 4\n*edges\n1 2\n2 3\n"
	g, err := pajek.ReadGraph(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	if g.Directed() {
		t.Errorf("expected undirected graph")
	}
	if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) || !g.HasEdge(1, 2) {
		t.Errorf("edges not parsed correctly: %+v", g.EdgeList())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d; want 2", g.EdgeCount())
	}
}

func TestReadGraph_DirectedBipartite(t *testing.T) {
	src := "*vertices 4 2\n*arcs\n1 3\n2 4\n"
	g, err := pajek.ReadGraph(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	if !g.Directed() || !g.Bipartite() {
		t.Fatalf("expected directed bipartite graph")
	}
	if g.ModeACount() != 2 {
		t.Errorf("ModeACount = %d; want 2", g.ModeACount())
	}
	if !g.HasEdge(0, 2) || g.HasEdge(2, 0) {
		t.Errorf("directed arc not one-way: %+v", g.EdgeList())
	}
}

func TestReadGraph_MissingVertices(t *testing.T) {
	if _, err := pajek.ReadGraph(strings.NewReader("*arcs\n1 2\n")); !errors.Is(err, pajek.ErrMissingVertices) {
		t.Errorf("error = %v; want ErrMissingVertices", err)
	}
}

func TestWriteGraph_RoundTrips(t *testing.T) {
	src := "*vertices 3\n*edges\n1 2\n1 3\n"
	g, err := pajek.ReadGraph(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}

	var buf strings.Builder
	if err := pajek.WriteGraph(&buf, g); err != nil {
		t.Fatalf("WriteGraph: %v", err)
	}

	g2, err := pajek.ReadGraph(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if g2.EdgeCount() != g.EdgeCount() {
		t.Errorf("round trip lost edges: %d != %d", g2.EdgeCount(), g.EdgeCount())
	}
	for _, e := range g.EdgeList() {
		if !g2.HasEdge(e.From, e.To) {
			t.Errorf("round trip missing edge %+v", e)
		}
	}
}

func TestSnapshotName(t *testing.T) {
	if got, want := pajek.SnapshotName("sim", 3), "sim_3.net"; got != want {
		t.Errorf("SnapshotName = %q; want %q", got, want)
	}
}

func TestReadBinaryAttrs(t *testing.T) {
	src := "smoker employed\n1 0\n0 NA\n1 1\n"
	store := attr.NewStore(3)
	if err := pajek.ReadBinaryAttrs(strings.NewReader(src), store, 3); err != nil {
		t.Fatalf("ReadBinaryAttrs: %v", err)
	}
	smoker, err := store.Get("smoker")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if smoker.Binary(0) != 1 || smoker.Binary(1) != 0 {
		t.Errorf("smoker values wrong")
	}
	employed, err := store.Get("employed")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !employed.IsNA(1) {
		t.Errorf("expected employed[1] to be NA")
	}
}

func TestReadSetAttrs(t *testing.T) {
	src := "groups\n1,2,3\nnone\nNA\n"
	store := attr.NewStore(3)
	if err := pajek.ReadSetAttrs(strings.NewReader(src), store, 3); err != nil {
		t.Fatalf("ReadSetAttrs: %v", err)
	}
	groups, err := store.Get("groups")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := groups.Set(0); len(got) != 3 {
		t.Errorf("groups[0] = %v; want 3 elements", got)
	}
	if got := groups.Set(1); len(got) != 0 {
		t.Errorf("groups[1] = %v; want empty", got)
	}
	if !groups.IsNA(2) {
		t.Errorf("expected groups[2] to be NA")
	}
}

func TestReadAttrs_CountMismatch(t *testing.T) {
	src := "x\n1\n2\n"
	store := attr.NewStore(3)
	if err := pajek.ReadCategoricalAttrs(strings.NewReader(src), store, 3); !errors.Is(err, pajek.ErrAttributeCountMismatch) {
		t.Errorf("error = %v; want ErrAttributeCountMismatch", err)
	}
}

func TestTraceWriter_WritesHeaderAndRows(t *testing.T) {
	var buf strings.Builder
	tw := pajek.NewTraceWriter(&buf, []string{"Arc", "Reciprocity"})
	if err := tw.WriteRow(0, []float64{0.1, -0.2}, 0.5); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if err := tw.WriteRow(1, []float64{0.15, -0.18}, 0.52); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if err := tw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d; want 3", len(lines))
	}
	if lines[0] != "t\tArc\tReciprocity\tAcceptanceRate" {
		t.Errorf("header = %q", lines[0])
	}
}
