package simulate_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/networkee/ergmee/attr"
	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/effect"
	"github.com/networkee/ergmee/sampler"
	"github.com/networkee/ergmee/simulate"
	"github.com/networkee/ergmee/twopath"
)

func TestRun_EmitsSampleSizeRowsAndPreservesTheta(t *testing.T) {
	g := core.NewGraph(8)
	reg := effect.NewRegistry()
	arc, err := reg.Bind("Arc", 0, "", g)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	theta := []float64{-0.5}
	model, err := sampler.NewModel([]*effect.Effect{arc}, theta, false)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	ctx := &effect.Context{G: g, Cache: twopath.New(twopath.KindHash, g), Attrs: attr.NewStore(8)}
	kernel := &sampler.BasicKernel{}
	rng := rand.New(rand.NewSource(5))

	var snapshots int
	rows, err := simulate.Run(context.Background(), kernel, ctx, rng, model, 10, 5, 4, func(step int, g *core.Graph) error {
		snapshots++

		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d; want 4", len(rows))
	}
	if snapshots != 4 {
		t.Errorf("snapshots = %d; want 4", snapshots)
	}
	if model.Theta[0] != -0.5 {
		t.Errorf("theta mutated by simulator: got %v, want -0.5", model.Theta[0])
	}
}
