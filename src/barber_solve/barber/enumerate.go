package barber

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

func (inst *Instance) newSolution(j int, obj Objective) *Solution {
	x := mat.NewVecDense(inst.NumShops(), nil)
	x.SetVec(j, 1)
	return &Solution{
		ShopIndex: j,
		Name:      inst.Shops[j].Name,
		Selected:  x,
		Objective: obj,
		Value:     mat.Dot(x, inst.attribute(obj)),
	}
}

// Solve picks the affordable shop with the smallest objective attribute by
// exhaustive enumeration. The feasible region is tiny (one indicator per
// shop, exactly one set), so no solver is required; ties keep the
// lowest-index shop.
func (inst *Instance) Solve(obj Objective) (*Solution, error) {
	attr := inst.attribute(obj)
	best := -1
	for j := range inst.NumShops() {
		if inst.Costs.AtVec(j) > inst.Budget {
			continue
		}
		if best < 0 || attr.AtVec(j) < attr.AtVec(best) {
			best = j
		}
	}
	if best < 0 {
		return nil, ErrInfeasible
	}
	return inst.newSolution(best, obj), nil
}

// Rank returns every affordable shop ordered by the objective attribute,
// best first.
func (inst *Instance) Rank(obj Objective) ([]*Solution, error) {
	attr := inst.attribute(obj)
	pq := priorityqueue.New[int, float64](priorityqueue.MinHeap)
	for j := range inst.NumShops() {
		if inst.Costs.AtVec(j) <= inst.Budget {
			pq.Put(j, attr.AtVec(j))
		}
	}
	if pq.Len() == 0 {
		return nil, ErrInfeasible
	}

	ranked := make([]*Solution, 0, pq.Len())
	for pq.Len() > 0 {
		item := pq.Get()
		ranked = append(ranked, inst.newSolution(item.Value, obj))
	}
	return ranked, nil
}

// solutionFromPrimal reads a MIP primal back into a Solution, enforcing
// that the solver selected exactly one shop.
func (inst *Instance) solutionFromPrimal(primal []float64, obj Objective, objective float64) (*Solution, error) {
	selected := -1
	for j := range inst.NumShops() {
		if primal[j] > 0.5 {
			if selected >= 0 {
				return nil, fmt.Errorf("solver selected both %q and %q, want exactly one shop",
					inst.Shops[selected].Name, inst.Shops[j].Name)
			}
			selected = j
		}
	}
	if selected < 0 {
		return nil, fmt.Errorf("solver selected no shop, want exactly one")
	}

	sol := inst.newSolution(selected, obj)
	sol.Value = objective
	return sol, nil
}
