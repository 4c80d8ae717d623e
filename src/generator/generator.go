package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"barber_choice/src/barber_solve/barber"
)

type instanceFile struct {
	Budget float64       `yaml:"budget"`
	Shops  []barber.Shop `yaml:"shops"`
}

func GenerateInstance(numShops int, budget, meanCost, stdDevCost float64) ([]byte, error) {
	f := instanceFile{
		Budget: budget,
		Shops:  make([]barber.Shop, numShops),
	}
	for i := range f.Shops {
		f.Shops[i] = barber.Shop{
			Name:           fmt.Sprintf("shop%d", i+1),
			Cost:           math.Max(1, meanCost+stdDevCost*rand.NormFloat64()),
			Distance:       10 * rand.Float64(),
			WaitMinutes:    float64(rand.Intn(60)),
			ServiceMinutes: float64(10 + rand.Intn(50)),
		}
	}
	return yaml.Marshal(&f)
}

func main() {
	var outPath string
	var numShops int
	var budget, meanCost, stdDevCost float64

	flag.StringVar(&outPath, "out", "out.yaml", "The output file")
	flag.IntVar(&numShops, "shops", 0, "The number of shops")
	flag.Float64Var(&budget, "budget", 0, "The budget")
	flag.Float64Var(&meanCost, "meanc", 0, "The shop cost mean")
	flag.Float64Var(&stdDevCost, "stddevc", 0, "The shop cost standard deviation")

	flag.Parse()

	err := false
	if numShops == 0 {
		fmt.Fprintln(os.Stderr, "Must specify the number of shops")
		err = true
	}
	if budget == 0 {
		fmt.Fprintln(os.Stderr, "Must specify the budget")
		err = true
	}
	if meanCost == 0 {
		fmt.Fprintln(os.Stderr, "Must specify the shop cost mean")
		err = true
	}
	if stdDevCost == 0 {
		fmt.Fprintln(os.Stderr, "Must specify the shop cost standard deviation")
		err = true
	}

	if err {
		os.Exit(1)
	}

	raw, genErr := GenerateInstance(numShops, budget, meanCost, stdDevCost)
	if genErr != nil {
		fmt.Fprintln(os.Stderr, genErr)
		os.Exit(1)
	}
	os.WriteFile(outPath, raw, 0666)
}
