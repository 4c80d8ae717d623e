package barber

import (
	"errors"
	"fmt"

	"github.com/lukpank/go-glpk/glpk"
)

func arange(start, end int) []int32 {
	nums := make([]int32, end-start)
	startI32 := int32(start)
	for i := range int32(end - start) {
		nums[i] = startI32 + i
	}
	return nums
}

func (inst *Instance) runGLPKSolver(prob *glpk.Prob, obj Objective) (*Solution, error) {
	iocp := glpk.NewIocp()
	iocp.SetPresolve(true)
	iocp.SetMsgLev(glpk.MSG_OFF)

	if err := prob.Intopt(iocp); err != nil {
		// With the presolver on, an infeasible relaxation surfaces as
		// ENOPFS/ENODFS from Intopt and MipStatus stays UNDEF.
		if errors.Is(err, glpk.ENOPFS) || errors.Is(err, glpk.ENODFS) {
			return nil, ErrInfeasible
		}
		if prob.MipStatus() == glpk.NOFEAS {
			return nil, ErrInfeasible
		}
		return nil, err
	}
	if prob.MipStatus() == glpk.NOFEAS {
		return nil, ErrInfeasible
	}
	if prob.MipStatus() != glpk.OPT {
		return nil, fmt.Errorf("status: %v", prob.MipStatus())
	}

	primal := make([]float64, inst.NumShops())
	for j := range primal {
		primal[j] = prob.MipColVal(j + 1)
	}
	return inst.solutionFromPrimal(primal, obj, prob.MipObjVal())
}

func (inst *Instance) defAssignmentGLPK(obj Objective) *glpk.Prob {
	prob := glpk.New()
	prob.SetObjDir(glpk.MIN)

	numVars := inst.NumShops()
	attr := inst.attribute(obj)
	prob.AddCols(numVars)
	for j := range numVars {
		prob.SetColKind(j+1, glpk.BV)
		prob.SetObjCoef(j+1, attr.AtVec(j))
	}

	prob.AddRows(2)
	prob.SetRowBnds(1, glpk.FX, 1, 1)
	prob.SetRowBnds(2, glpk.UP, 0, inst.Budget)

	ind := arange(0, numVars+1)
	row := make([]float64, numVars+1)
	for j := range numVars {
		row[j+1] = 1
	}
	prob.SetMatRow(1, ind, row)
	for j := range numVars {
		row[j+1] = inst.Costs.AtVec(j)
	}
	prob.SetMatRow(2, ind, row)
	return prob
}

// SolveGLPK hands the binary assignment MIP to the GLPK solver.
func (inst *Instance) SolveGLPK(obj Objective) (*Solution, error) {
	prob := inst.defAssignmentGLPK(obj)
	defer prob.Delete()
	return inst.runGLPKSolver(prob, obj)
}
