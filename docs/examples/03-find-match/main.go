package main

import (
	"context"
	"log"
	"os"

	"github.com/planetgen/planetgen/internal/encode"
)

// find-match mode reads an 11x24 ASCII preference map on stdin and
// prints successively better-matching seeds as it searches.
//
// Try it with:
//
//	printf '........................\n...' | go run . 2>&1 | head
func main() {
	m, err := encode.ReadAsciiMap(os.Stdin)
	if err != nil {
		log.Fatalf("read map: %v", err)
	}
	for _, w := range m.Warnings {
		log.Printf("map warning: %s", w)
	}

	best := int(^uint(0) >> 1)
	sp := encode.SearchParams{
		Seed:         0.123,
		Increment:    0.00001,
		InitialAlt:   -0.02,
		DD1:          0.45,
		DD2:          0.035,
		POW:          0.47,
		MaxSeedSteps: 200,
	}
	if err := encode.FindMatch(context.Background(), os.Stdout, m, sp, &best); err != nil {
		log.Fatalf("find match: %v", err)
	}
}
