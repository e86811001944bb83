package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/burakssen/sandbox/internal/sims/sand"
)

type paramSet struct {
	gravitySand  float64
	gravityWater float64
	gravityOil   float64
	maxVelocity  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("sand=%.3f water=%.3f oil=%.3f maxVel=%.1f",
		p.gravitySand, p.gravityWater, p.gravityOil, p.maxVelocity)
}

type scenarioResult struct {
	params     paramSet
	ticks      int
	stratified bool
	conserved  bool
}

func main() {
	width := flag.Int("w", 24, "grid width")
	height := flag.Int("h", 48, "grid height")
	depth := flag.Int("depth", 6, "rows per inverted layer")
	maxTicks := flag.Int("ticks", 20000, "tick limit per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to print")
	layerNames := flag.String("layers", "sand,water,oil", "materials stacked top to bottom")
	flag.Parse()

	layers, err := sand.ParseLayers(*layerNames)
	if err != nil {
		log.Fatal(err)
	}

	base := sand.DefaultConfig()
	base.Width = *width
	base.Height = *height
	if *depth*len(layers) >= *height {
		log.Fatalf("depth %d does not fit a grid of height %d", *depth, *height)
	}

	sandOptions := []float64{0.06, 0.1, 0.2}
	waterOptions := []float64{0.03, 0.05, 0.1}
	oilOptions := []float64{0.02, 0.04, 0.08}
	velocityOptions := []float64{2.5, 5, 10}

	var sets []paramSet
	for _, gs := range sandOptions {
		for _, gw := range waterOptions {
			for _, gol := range oilOptions {
				for _, mv := range velocityOptions {
					sets = append(sets, paramSet{gravitySand: gs, gravityWater: gw, gravityOil: gol, maxVelocity: mv})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d tick limit)\n", len(sets), *workers, *maxTicks)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				res, err := runScenario(base, params, layers, *depth, *maxTicks)
				if err != nil {
					log.Printf("skip %s: %v", params, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if !res.conserved {
			fmt.Printf("Material count changed with %s\n", res.params)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].stratified != all[j].stratified {
			return all[i].stratified
		}
		return all[i].ticks < all[j].ticks
	})

	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		if i >= *top {
			break
		}
		state := "stratified"
		if !res.stratified {
			state = "unsettled"
		}
		fmt.Printf("%2d. %5d ticks %-10s %s\n", i+1, res.ticks, state, res.params)
	}
}

func runScenario(base sand.Config, params paramSet, layers []sand.Material, depth, maxTicks int) (scenarioResult, error) {
	cfg := base
	cfg.Params.GravitySand = params.gravitySand
	cfg.Params.GravityWater = params.gravityWater
	cfg.Params.GravityOil = params.gravityOil
	cfg.Params.MaxVelocitySand = params.maxVelocity
	cfg.Params.MaxVelocityWater = params.maxVelocity
	cfg.Params.MaxVelocityOil = params.maxVelocity

	world, err := sand.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	world.SeedLayers(0, cfg.Width, depth, layers...)
	before := [3]int{world.Count(sand.Sand), world.Count(sand.Water), world.Count(sand.Oil)}

	ticks, ok := world.RunUntilStratified(maxTicks, 1.0/60)
	after := [3]int{world.Count(sand.Sand), world.Count(sand.Water), world.Count(sand.Oil)}
	return scenarioResult{params: params, ticks: ticks, stratified: ok, conserved: before == after}, nil
}
