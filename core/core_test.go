package core_test

import (
	"errors"
	"testing"

	"github.com/networkee/ergmee/core"
)

func TestInsertRemoveEdge_Undirected(t *testing.T) {
	g := core.NewGraph(4)
	if _, err := g.ToggleEdge(0, 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) {
		t.Fatalf("expected mirrored undirected edge")
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d; want 1", g.EdgeCount())
	}
	if err := g.RemoveEdge(0, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if g.HasEdge(0, 1) || g.HasEdge(1, 0) {
		t.Fatalf("expected edge removed on both sides")
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("EdgeCount = %d; want 0", g.EdgeCount())
	}
}

func TestInsertEdge_Directed(t *testing.T) {
	g := core.NewGraph(3, core.WithDirected())
	if err := g.InsertEdge(0, 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !g.HasEdge(0, 1) {
		t.Fatalf("expected 0->1")
	}
	if g.HasEdge(1, 0) {
		t.Fatalf("directed edge must not mirror")
	}
	if g.OutDegree(0) != 1 || g.InDegree(1) != 1 {
		t.Fatalf("degree mismatch: out(0)=%d in(1)=%d", g.OutDegree(0), g.InDegree(1))
	}
}

func TestInsertEdge_Errors(t *testing.T) {
	g := core.NewGraph(2)
	if err := g.InsertEdge(5, 0); !errors.Is(err, core.ErrInvalidNodeIndex) {
		t.Errorf("out-of-range: want ErrInvalidNodeIndex, got %v", err)
	}
	if err := g.InsertEdge(0, 0); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
	if err := g.InsertEdge(0, 1); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if err := g.InsertEdge(0, 1); !errors.Is(err, core.ErrEdgeExists) {
		t.Errorf("duplicate: want ErrEdgeExists, got %v", err)
	}
	if err := g.RemoveEdge(1, 0); err != nil {
		t.Fatalf("undirected mirror removal should succeed: %v", err)
	}
	if err := g.RemoveEdge(0, 1); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("already-removed: want ErrEdgeNotFound, got %v", err)
	}
}

func TestBipartite_CrossModeEnforced(t *testing.T) {
	g := core.NewGraph(4, core.WithBipartite(2)) // modes: {0,1}=A, {2,3}=B
	if err := g.InsertEdge(0, 1); !errors.Is(err, core.ErrCrossModeRequired) {
		t.Errorf("same-mode: want ErrCrossModeRequired, got %v", err)
	}
	if err := g.InsertEdge(0, 2); err != nil {
		t.Fatalf("cross-mode insert: %v", err)
	}
	if g.ModeOf(0) != core.ModeA || g.ModeOf(2) != core.ModeB {
		t.Errorf("ModeOf mismatch")
	}
}

func TestLoops_DisallowedByDefault(t *testing.T) {
	g := core.NewGraph(1)
	if err := g.InsertEdge(0, 0); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("want ErrSelfLoop, got %v", err)
	}
	gl := core.NewGraph(1, core.WithLoops())
	if err := gl.InsertEdge(0, 0); err != nil {
		t.Errorf("loop should be allowed: %v", err)
	}
}

func TestEdgeList_DeterministicOrder(t *testing.T) {
	g := core.NewGraph(4, core.WithDirected())
	_ = g.InsertEdge(2, 1)
	_ = g.InsertEdge(0, 3)
	_ = g.InsertEdge(0, 1)
	want := []core.Edge{{From: 0, To: 1}, {From: 0, To: 3}, {From: 2, To: 1}}
	got := g.EdgeList()
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EdgeList()[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(3)
	_ = g.InsertEdge(0, 1)
	clone := g.Clone()
	_ = g.InsertEdge(1, 2)
	if clone.HasEdge(1, 2) {
		t.Errorf("clone must not observe post-clone mutation of source")
	}
	if !clone.HasEdge(0, 1) {
		t.Errorf("clone must retain pre-clone edges")
	}
}

func TestNeighbours_SortedStable(t *testing.T) {
	g := core.NewGraph(5, core.WithDirected())
	_ = g.InsertEdge(0, 3)
	_ = g.InsertEdge(0, 1)
	_ = g.InsertEdge(0, 4)
	got := g.OutNeighbours(0)
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OutNeighbours(0)[%d] = %d; want %d", i, got[i], want[i])
		}
	}
}
