package barber

import (
	"fmt"
	"slices"

	"github.com/lanl/highs"
)

func (inst *Instance) runHighsSolver(lp *highs.Model, obj Objective) (*Solution, error) {
	solution, err := lp.Solve()
	if err != nil {
		return nil, err
	}
	switch solution.Status {
	case highs.Optimal:
	case highs.Infeasible, highs.UnboundedOrInfeasible:
		return nil, ErrInfeasible
	default:
		return nil, fmt.Errorf("status: %v", solution.Status.String())
	}

	return inst.solutionFromPrimal(solution.ColumnPrimal[:inst.NumShops()], obj, solution.Objective)
}

func (inst *Instance) defAssignment(obj Objective) *highs.Model {
	lp := new(highs.Model)
	numCols := inst.NumShops()

	lp.VarTypes = make([]highs.VariableType, numCols)
	lp.ColLower = make([]float64, numCols)
	lp.ColUpper = make([]float64, numCols)
	ones := make([]float64, numCols)
	for j := range numCols {
		lp.VarTypes[j] = highs.IntegerType
		lp.ColUpper[j] = 1
		ones[j] = 1
	}

	lp.ColCosts = slices.Clone(inst.attribute(obj).RawVector().Data)

	// exactly one shop, and the selected one within budget
	lp.AddDenseRow(1, ones, 1)
	lp.AddDenseRow(0, inst.Costs.RawVector().Data, inst.Budget)
	return lp
}

// SolveHighs hands the binary assignment MIP to the HiGHS solver.
func (inst *Instance) SolveHighs(obj Objective) (*Solution, error) {
	lp := inst.defAssignment(obj)
	return inst.runHighsSolver(lp, obj)
}
