package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fractalart/internal/fractal"
)

func main() {
	rulesPath := flag.String("rules", "", "path to a rule file, one PATTERN => REPLACEMENT per line (default: built-in demo rules)")
	rounds := flag.Int("rounds", 2, "number of enhancement rounds to apply")
	seed := flag.String("seed", "", "starting pattern, e.g. .#./..#/### (default: the glider seed)")
	verbose := flag.Bool("v", false, "also print the final grid")
	flag.Parse()

	if *rounds < 0 {
		log.Fatalf("rounds must be non-negative, got %d", *rounds)
	}

	lines := fractal.DemoRules
	if *rulesPath != "" {
		text, err := os.ReadFile(*rulesPath)
		if err != nil {
			log.Fatalf("read rules: %v", err)
		}
		lines = fractal.SplitRules(string(text))
	}

	session, err := fractal.New(lines, *seed)
	if err != nil {
		log.Fatalf("build session: %v", err)
	}

	grid, err := session.Enhance(*rounds)
	if err != nil {
		log.Fatalf("enhance: %v", err)
	}

	fmt.Printf("after %d rounds: size %d, %d pixels on\n", *rounds, grid.Size(), grid.PopCount())
	if *verbose {
		fmt.Println(grid)
	}
}
