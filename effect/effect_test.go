package effect_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/networkee/ergmee/attr"
	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/effect"
	"github.com/networkee/ergmee/twopath"
)

func newCtx(g *core.Graph, kind twopath.Kind) *effect.Context {
	return &effect.Context{G: g, Cache: twopath.New(kind, g), Attrs: attr.NewStore(g.N())}
}

// TestS2_AltInStars reproduces spec.md §8 scenario S2: a directed star
// with 5 arcs into a central node. The leaves' own in-degree is always
// zero (they are sources, never targets), so their contribution to the
// network-wide AltInStars sum is zero and the global statistic reduces to
// the central node's own term — the literal numbers quoted in S2.
func TestS2_AltInStars(t *testing.T) {
	g := core.NewGraph(7, core.WithDirected()) // node 0 = center, 1..6 = leaves
	for leaf := 1; leaf <= 5; leaf++ {
		if err := g.InsertEdge(leaf, 0); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	ctx := newCtx(g, twopath.KindDense)

	reg := effect.NewRegistry()
	eff, err := reg.Bind("AltInStars", 2, "", g)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	got := eff.StatDirect(ctx)
	want := 2 * (1 - math.Pow(0.5, 5))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("StatDirect = %v; want %v", got, want)
	}

	delta := eff.DeltaZ(ctx, 6, 0) // adding the 6th leaf's arc into the center
	wantDelta := 2 * (math.Pow(0.5, 5) - math.Pow(0.5, 6))
	if math.Abs(delta-wantDelta) > 1e-9 {
		t.Errorf("DeltaZ = %v; want %v", delta, wantDelta)
	}
}

// TestS3_Reciprocity reproduces spec.md §8 scenario S3 exactly.
func TestS3_Reciprocity(t *testing.T) {
	g := core.NewGraph(2, core.WithDirected())
	if err := g.InsertEdge(0, 1); err != nil { // arc "1->2"
		t.Fatalf("insert: %v", err)
	}
	ctx := newCtx(g, twopath.KindDense)

	reg := effect.NewRegistry()
	eff, err := reg.Bind("Reciprocity", 0, "", g)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	if got := eff.DeltaZ(ctx, 1, 0); got != 1 {
		t.Errorf("Delta(toggle 2->1) = %v; want 1", got)
	}
	if err := g.InsertEdge(1, 0); err != nil {
		t.Fatalf("insert: %v", err)
	}
	ctx = newCtx(g, twopath.KindDense)
	if got := eff.DeltaZ(ctx, 1, 0); got != -1 {
		t.Errorf("Delta(toggle 2->1 again) = %v; want -1", got)
	}
}

// TestS1_FourCycles reproduces spec.md §8 scenario S1 through the
// registry-bound effect rather than the raw cache.
func TestS1_FourCycles(t *testing.T) {
	g := core.NewGraph(4, core.WithBipartite(2))
	for _, e := range [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}} {
		if err := g.InsertEdge(e[0], e[1]); err != nil {
			t.Fatalf("insert %v: %v", e, err)
		}
	}
	reg := effect.NewRegistry()
	eff, err := reg.Bind("FourCycles", 0, "", g)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	ctx := newCtx(g, twopath.KindDense)
	if got := eff.StatDirect(ctx); got != 1 {
		t.Errorf("StatDirect = %v; want 1", got)
	}

	if err := g.RemoveEdge(1, 3); err != nil {
		t.Fatalf("remove: %v", err)
	}
	ctx = newCtx(g, twopath.KindDense)
	if got := eff.StatDirect(ctx); got != 0 {
		t.Errorf("StatDirect after removing (1,3) = %v; want 0", got)
	}
	if got := eff.DeltaZ(ctx, 1, 3); got != 1 {
		t.Errorf("DeltaZ(re-adding (1,3)) = %v; want 1", got)
	}
}

// TestDeltaZ_MatchesStatDirect checks the consistency property
// every closed-form effect must satisfy: summing DeltaZ along a random
// walk of toggles must track StatDirect recomputed from scratch at each
// step (spec.md §8 property, applied to the change-statistic layer
// instead of the two-path cache layer).
func TestDeltaZ_MatchesStatDirect(t *testing.T) {
	names := []struct {
		name   string
		lambda float64
	}{
		{"Arc", 0},
		{"AltStars", 2},
		{"AltTriangles", 2},
	}
	for _, spec := range names {
		spec := spec
		t.Run(spec.name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				n := rapid.IntRange(3, 7).Draw(rt, "n")
				g := core.NewGraph(n)
				cache := twopath.New(twopath.KindHash, g)
				store := attr.NewStore(n)
				reg := effect.NewRegistry()
				eff, err := reg.Bind(spec.name, spec.lambda, "", g)
				if err != nil {
					rt.Fatalf("Bind: %v", err)
				}

				z := eff.StatDirect(&effect.Context{G: g, Cache: cache, Attrs: store})
				steps := rapid.IntRange(0, 25).Draw(rt, "steps")
				for s := 0; s < steps; s++ {
					i := rapid.IntRange(0, n-1).Draw(rt, "i")
					j := rapid.IntRange(0, n-1).Draw(rt, "j")
					if i == j {
						continue
					}
					ctx := &effect.Context{G: g, Cache: cache, Attrs: store}
					delta := eff.DeltaZ(ctx, i, j)
					toggleDelta, err := g.ToggleEdge(i, j)
					if err != nil {
						continue
					}
					if err := cache.UpdateAfterEdgeChange(g, i, j, toggleDelta); err != nil {
						rt.Fatalf("cache update: %v", err)
					}
					z += delta
					want := eff.StatDirect(&effect.Context{G: g, Cache: cache, Attrs: store})
					if math.Abs(z-want) > 1e-6 {
						rt.Fatalf("after step %d: accumulated z=%v, recomputed=%v", s, z, want)
					}
				}
			})
		})
	}
}

func TestRegistry_UnknownEffect(t *testing.T) {
	reg := effect.NewRegistry()
	g := core.NewGraph(3)
	if _, err := reg.Bind("DoesNotExist", 0, "", g); err == nil {
		t.Error("expected error for unknown effect name")
	}
}

func TestRegistry_ExperimentalGated(t *testing.T) {
	g := core.NewGraph(4, core.WithBipartite(2))
	reg := effect.NewRegistry()
	if _, err := reg.Bind("BipartiteAltK4CyclesA", 2, "", g); err == nil {
		t.Error("expected ErrExperimentalDisabled without WithExperimental")
	}
	regExp := effect.NewRegistry(effect.WithExperimental())
	if _, err := regExp.Bind("BipartiteAltK4CyclesA", 2, "", g); err != nil {
		t.Errorf("expected bind to succeed with WithExperimental: %v", err)
	}
}

func TestRegistry_MaxCachedPowerDoesNotChangeResults(t *testing.T) {
	g := core.NewGraph(6)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 4}} {
		if err := g.InsertEdge(e[0], e[1]); err != nil {
			t.Fatalf("InsertEdge: %v", err)
		}
	}

	regDefault := effect.NewRegistry()
	regTiny := effect.NewRegistry(effect.WithMaxCachedPower(1))

	effDefault, err := regDefault.Bind("AltStars", 2, "", g)
	if err != nil {
		t.Fatalf("Bind (default): %v", err)
	}
	effTiny, err := regTiny.Bind("AltStars", 2, "", g)
	if err != nil {
		t.Fatalf("Bind (tiny cache): %v", err)
	}

	ctx := newCtx(g, twopath.KindHash)
	gotDefault := effDefault.StatDirect(ctx)
	gotTiny := effTiny.StatDirect(ctx)
	if math.Abs(gotDefault-gotTiny) > 1e-9 {
		t.Errorf("StatDirect mismatch: default=%v tiny-cache=%v", gotDefault, gotTiny)
	}

	deltaDefault := effDefault.DeltaZ(ctx, 0, 5)
	deltaTiny := effTiny.DeltaZ(ctx, 0, 5)
	if math.Abs(deltaDefault-deltaTiny) > 1e-9 {
		t.Errorf("DeltaZ mismatch: default=%v tiny-cache=%v", deltaDefault, deltaTiny)
	}
}

func TestAttributeEffects_Matching(t *testing.T) {
	g := core.NewGraph(3)
	store := attr.NewStore(3)
	_ = store.AddCategorical("group", []int{1, 1, 2}, nil)
	reg := effect.NewRegistry()
	eff, err := reg.Bind("Matching", 0, "group", g)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	ctx := &effect.Context{G: g, Cache: twopath.New(twopath.KindHash, g), Attrs: store}
	if got := eff.DeltaZ(ctx, 0, 1); got != 1 {
		t.Errorf("DeltaZ(0,1) same group = %v; want 1", got)
	}
	if got := eff.DeltaZ(ctx, 0, 2); got != 0 {
		t.Errorf("DeltaZ(0,2) different group = %v; want 0", got)
	}
}
