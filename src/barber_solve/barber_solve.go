package main

import (
	"barber_choice/src/barber_solve/barber"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	var solveEnum, solveHighs, solveGLPK, solveLPSolve bool
	var rank bool
	var objName string
	var budget float64
	var paths []string

	flag.Func("inst", "a list of instance file paths, separated by a whitespace", func(s string) error {
		paths = strings.Fields(s)
		return nil
	})
	flag.StringVar(&objName, "objective", "cost", "Attribute to minimize: cost, distance or time")
	flag.Float64Var(&budget, "budget", 0, "Override the instance budget (must be positive)")
	flag.BoolVar(&solveEnum, "enum", false, "Solve by exhaustive enumeration (the default)")
	flag.BoolVar(&solveHighs, "highs", false, "Solve the problem using the HiGHS solver")
	flag.BoolVar(&solveGLPK, "glpk", false, "Solve the problem using the GLPK solver")
	flag.BoolVar(&solveLPSolve, "lpsolve", false, "Solve the problem using lp_solve")
	flag.BoolVar(&rank, "rank", false, "Also print all affordable shops ordered by the objective")

	flag.Parse()

	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Must specify at least a path")
		os.Exit(1)
	}
	obj, err := barber.ParseObjective(objName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Enumeration is the default; the MIP backends give the same answer
	// through an external solver.
	solve := (*barber.Instance).Solve
	name := "enumeration"
	switch {
	case solveEnum:
	case solveHighs:
		solve, name = (*barber.Instance).SolveHighs, "HiGHS"
	case solveGLPK:
		solve, name = (*barber.Instance).SolveGLPK, "GLPK"
	case solveLPSolve:
		solve, name = (*barber.Instance).SolveLPSolve, "lp_solve"
	}

	for _, p := range paths {
		inst, err := barber.LoadInstance(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error for instance \"%v\": %v. Skipping...\n", p, err)
			continue
		}
		if budget > 0 {
			inst.Budget = budget
		}

		fmt.Printf("Solving %v with %v...\n", p, name)
		sol, err := solve(inst, obj)
		switch {
		case errors.Is(err, barber.ErrInfeasible):
			fmt.Printf("Instance %v: infeasible, no shop within budget %f\n", p, inst.Budget)
		case err != nil:
			fmt.Fprintf(os.Stderr, "An error occured while solving instance \"%v\": %v\n", p, err)
		default:
			fmt.Printf("Instance %v:\n%v\n", p, sol)
		}

		if rank && err == nil {
			ranked, err := inst.Rank(obj)
			if err != nil {
				fmt.Fprintf(os.Stderr, "An error occured while ranking instance \"%v\": %v\n", p, err)
				continue
			}
			fmt.Println("Ranking:")
			for i, r := range ranked {
				fmt.Printf("%d. %s (%v %f)\n", i+1, r.Name, obj, r.Value)
			}
		}
		fmt.Println()
	}
}
