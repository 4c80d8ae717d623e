package barber

import (
	"errors"
	"fmt"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// ErrInfeasible is returned when no shop fits the budget.
var ErrInfeasible = errors.New("infeasible: no shop within budget")

type instanceFile struct {
	Budget float64 `yaml:"budget"`
	Shops  []Shop  `yaml:"shops"`
}

func errorCoalesce(args ...error) error {
	for _, e := range args {
		if e != nil {
			return e
		}
	}
	return nil
}

func checkBudget(budget float64) error {
	if budget <= 0 {
		return fmt.Errorf("budget must be positive, got %f", budget)
	}
	return nil
}

func checkShops(shops []Shop) error {
	if len(shops) == 0 {
		return fmt.Errorf("instance has no shops")
	}
	for _, sh := range shops {
		if sh.Name == "" {
			return fmt.Errorf("shop with empty name")
		}
		if sh.Cost < 0 || sh.Distance < 0 || sh.WaitMinutes < 0 || sh.ServiceMinutes < 0 {
			return fmt.Errorf("shop %q has a negative attribute", sh.Name)
		}
	}
	return nil
}

func checkNames(shops []Shop) error {
	names := mapset.NewSet[string]()
	for _, sh := range shops {
		if !names.Add(sh.Name) {
			return fmt.Errorf("duplicate shop name %q", sh.Name)
		}
	}
	return nil
}

// NewInstance validates the shops and precomputes the attribute vectors.
func NewInstance(budget float64, shops []Shop) (*Instance, error) {
	err := errorCoalesce(
		checkBudget(budget),
		checkShops(shops),
		checkNames(shops),
	)
	if err != nil {
		return nil, err
	}

	n := len(shops)
	inst := &Instance{
		Budget:    budget,
		Shops:     shops,
		Costs:     mat.NewVecDense(n, nil),
		Distances: mat.NewVecDense(n, nil),
		AvgTimes:  mat.NewVecDense(n, nil),
	}
	for j := range shops {
		inst.Costs.SetVec(j, shops[j].Cost)
		inst.Distances.SetVec(j, shops[j].Distance)
		inst.AvgTimes.SetVec(j, shops[j].AvgTime())
	}
	return inst, nil
}

func LoadInstance(filename string) (*Instance, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var f instanceFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("error while parsing %q: %v", filename, err)
	}
	return NewInstance(f.Budget, f.Shops)
}
