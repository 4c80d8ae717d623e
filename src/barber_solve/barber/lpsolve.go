package barber

import (
	"fmt"

	"github.com/draffensperger/golp"
)

func (inst *Instance) defAssignmentLP(obj Objective) (*golp.LP, error) {
	numVars := inst.NumShops()
	lp := golp.NewLP(0, numVars)
	lp.SetVerboseLevel(golp.NEUTRAL)

	entries := make([]golp.Entry, numVars)
	for j := range numVars {
		lp.SetColName(j, inst.Shops[j].Name)
		lp.SetInt(j, true)
		entries[j] = golp.Entry{Col: j, Val: 1}
	}

	// Exactly one shop. The lower bound of 0 on every column makes the
	// integer variables binary under this row.
	if err := lp.AddConstraintSparse(entries, golp.EQ, 1); err != nil {
		return nil, err
	}
	for j := range numVars {
		entries[j].Val = inst.Costs.AtVec(j)
	}
	if err := lp.AddConstraintSparse(entries, golp.LE, inst.Budget); err != nil {
		return nil, err
	}

	attr := inst.attribute(obj)
	row := make([]float64, numVars)
	for j := range numVars {
		row[j] = attr.AtVec(j)
	}
	lp.SetObjFn(row)
	return lp, nil
}

func (inst *Instance) runLPSolver(lp *golp.LP, obj Objective) (*Solution, error) {
	switch ret := lp.Solve(); ret {
	case golp.OPTIMAL:
	case golp.INFEASIBLE:
		return nil, ErrInfeasible
	default:
		return nil, fmt.Errorf("lp_solve returned %d", ret)
	}
	return inst.solutionFromPrimal(lp.Variables(), obj, lp.Objective())
}

// SolveLPSolve hands the binary assignment MIP to lp_solve.
func (inst *Instance) SolveLPSolve(obj Objective) (*Solution, error) {
	lp, err := inst.defAssignmentLP(obj)
	if err != nil {
		return nil, err
	}
	return inst.runLPSolver(lp, obj)
}
