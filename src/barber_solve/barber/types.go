package barber

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Objective selects the per-shop attribute to minimize.
type Objective int

const (
	MinCost Objective = iota
	MinDistance
	MinTime
)

func ParseObjective(s string) (Objective, error) {
	switch s {
	case "cost":
		return MinCost, nil
	case "distance":
		return MinDistance, nil
	case "time":
		return MinTime, nil
	}
	return 0, fmt.Errorf("unknown objective %q, want cost, distance or time", s)
}

func (o Objective) String() string {
	switch o {
	case MinCost:
		return "cost"
	case MinDistance:
		return "distance"
	case MinTime:
		return "time"
	}
	return fmt.Sprintf("Objective(%d)", int(o))
}

// Shop is one selectable barbershop with its raw attributes.
type Shop struct {
	Name           string  `yaml:"name"`
	Cost           float64 `yaml:"cost"`
	Distance       float64 `yaml:"distance"`
	WaitMinutes    float64 `yaml:"wait_minutes"`
	ServiceMinutes float64 `yaml:"service_minutes"`
}

// AvgTime is half the sum of waiting and service time.
func (sh *Shop) AvgTime() float64 {
	return (sh.WaitMinutes + sh.ServiceMinutes) / 2
}

type Instance struct {
	Budget    float64
	Shops     []Shop
	Costs     *mat.VecDense
	Distances *mat.VecDense
	AvgTimes  *mat.VecDense
}

func (inst *Instance) NumShops() int {
	return len(inst.Shops)
}

// attribute returns the coefficient vector of the objective function.
func (inst *Instance) attribute(obj Objective) *mat.VecDense {
	switch obj {
	case MinDistance:
		return inst.Distances
	case MinTime:
		return inst.AvgTimes
	}
	return inst.Costs
}

type Solution struct {
	ShopIndex int
	Name      string
	Selected  *mat.VecDense
	Objective Objective
	Value     float64
}

func (sol *Solution) String() string {
	s := new(strings.Builder)
	s.WriteString(fmt.Sprintf("Selected shop: %s\n", sol.Name))
	s.WriteString(fmt.Sprintf("Objective (%v): %f", sol.Objective, sol.Value))
	return s.String()
}

func (inst *Instance) String() string {
	s := new(strings.Builder)
	s.WriteString(fmt.Sprintf("Budget: %f\n", inst.Budget))
	s.WriteString(fmt.Sprintf("N. shops: %d\n", inst.NumShops()))
	for _, sh := range inst.Shops {
		s.WriteString(fmt.Sprintf(
			"%s: cost %f, distance %f, avg time %f\n",
			sh.Name, sh.Cost, sh.Distance, sh.AvgTime(),
		))
	}
	return s.String()
}
