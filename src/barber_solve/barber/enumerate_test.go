package barber

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestSolve(t *testing.T) {
	cases := []struct {
		obj       Objective
		wantName  string
		wantValue float64
	}{
		{MinDistance, "Vidal", 0.42709},
		{MinCost, "Blanquita", 15000},
		{MinTime, "Beerberia", 15},
	}

	inst := testInstance(t)
	for _, c := range cases {
		t.Run(c.obj.String(), func(t *testing.T) {
			sol, err := inst.Solve(c.obj)
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}
			if sol.Name != c.wantName {
				t.Errorf("selected %q, want %q", sol.Name, c.wantName)
			}
			if !almostEqual(sol.Value, c.wantValue, 1e-9) {
				t.Errorf("Value = %f, want %f", sol.Value, c.wantValue)
			}
		})
	}
}

func TestSolveRespectsBudget(t *testing.T) {
	inst := testInstance(t)
	inst.Budget = 20000

	for _, obj := range []Objective{MinCost, MinDistance, MinTime} {
		sol, err := inst.Solve(obj)
		if err != nil {
			t.Fatalf("Solve(%v) failed: %v", obj, err)
		}
		// only Blanquita is affordable
		if sol.Name != "Blanquita" {
			t.Errorf("Solve(%v) selected %q, want \"Blanquita\"", obj, sol.Name)
		}
		if inst.Shops[sol.ShopIndex].Cost > inst.Budget {
			t.Errorf("Solve(%v) selected a shop above budget", obj)
		}
	}
}

func TestSolveExactlyOne(t *testing.T) {
	inst := testInstance(t)
	for _, obj := range []Objective{MinCost, MinDistance, MinTime} {
		sol, err := inst.Solve(obj)
		if err != nil {
			t.Fatalf("Solve(%v) failed: %v", obj, err)
		}
		if got := mat.Sum(sol.Selected); got != 1 {
			t.Errorf("Solve(%v): sum of indicators = %f, want 1", obj, got)
		}
		if got := sol.Selected.AtVec(sol.ShopIndex); got != 1 {
			t.Errorf("Solve(%v): indicator of selected shop = %f, want 1", obj, got)
		}
	}
}

func TestSolveMinimality(t *testing.T) {
	inst := testInstance(t)
	for _, obj := range []Objective{MinCost, MinDistance, MinTime} {
		sol, err := inst.Solve(obj)
		if err != nil {
			t.Fatalf("Solve(%v) failed: %v", obj, err)
		}
		attr := inst.attribute(obj)
		for j := range inst.NumShops() {
			if inst.Costs.AtVec(j) <= inst.Budget && attr.AtVec(j) < sol.Value {
				t.Errorf("Solve(%v): shop %q beats the selection (%f < %f)",
					obj, inst.Shops[j].Name, attr.AtVec(j), sol.Value)
			}
		}
	}
}

func TestSolveInfeasible(t *testing.T) {
	inst := testInstance(t)
	inst.Budget = 10000

	sol, err := inst.Solve(MinDistance)
	if !errors.Is(err, ErrInfeasible) {
		t.Fatalf("Solve = (%v, %v), want ErrInfeasible", sol, err)
	}
}

func TestSolveTie(t *testing.T) {
	shops := []Shop{
		{Name: "a", Cost: 10, Distance: 2},
		{Name: "b", Cost: 20, Distance: 2},
	}
	inst, err := NewInstance(100, shops)
	if err != nil {
		t.Fatalf("NewInstance failed: %v", err)
	}

	sol, err := inst.Solve(MinDistance)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if sol.Value != 2 {
		t.Errorf("Value = %f, want 2", sol.Value)
	}
}

func TestRank(t *testing.T) {
	inst := testInstance(t)
	ranked, err := inst.Rank(MinDistance)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	want := []string{"Vidal", "Beerberia", "Norberto", "Blanquita"}
	if len(ranked) != len(want) {
		t.Fatalf("Rank returned %d shops, want %d", len(ranked), len(want))
	}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Name, name)
		}
	}

	best, err := inst.Solve(MinDistance)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if ranked[0].Name != best.Name {
		t.Errorf("ranked[0] = %q, Solve picked %q", ranked[0].Name, best.Name)
	}
}

func TestRankExcludesUnaffordable(t *testing.T) {
	inst := testInstance(t)
	inst.Budget = 20000

	ranked, err := inst.Rank(MinTime)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(ranked) != 1 || ranked[0].Name != "Blanquita" {
		t.Errorf("Rank = %v, want only \"Blanquita\"", ranked)
	}
}

func TestRankInfeasible(t *testing.T) {
	inst := testInstance(t)
	inst.Budget = 10000

	if _, err := inst.Rank(MinCost); !errors.Is(err, ErrInfeasible) {
		t.Errorf("Rank error = %v, want ErrInfeasible", err)
	}
}

func TestSolutionFromPrimal(t *testing.T) {
	inst := testInstance(t)

	sol, err := inst.solutionFromPrimal([]float64{0, 0, 1, 0}, MinDistance, 0.42709)
	if err != nil {
		t.Fatalf("solutionFromPrimal failed: %v", err)
	}
	if sol.Name != "Vidal" {
		t.Errorf("Name = %q, want \"Vidal\"", sol.Name)
	}

	if _, err := inst.solutionFromPrimal([]float64{1, 0, 1, 0}, MinDistance, 0); err == nil {
		t.Error("solutionFromPrimal should reject two selected shops")
	}
	if _, err := inst.solutionFromPrimal([]float64{0, 0, 0, 0}, MinDistance, 0); err == nil {
		t.Error("solutionFromPrimal should reject an empty selection")
	}
}
