package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/okian/gridpath/internal/seed"
)

// Default configuration constants.
const (
	defaultCount       = 10000
	defaultDefectRatio = 0.05
)

func main() {
	var (
		out         = flag.String("out", "recruits.csv", "Output path for the generated dataset")
		count       = flag.Int("count", defaultCount, "Number of rows to generate")
		defectRatio = flag.Float64("defects", defaultDefectRatio, "Fraction of rows violating the admission rule (0..1)")
	)
	flag.Parse()

	if *count < 1 {
		fmt.Fprintln(os.Stderr, "count must be positive")
		os.Exit(1)
	}
	if *defectRatio < 0 || *defectRatio > 1 {
		fmt.Fprintln(os.Stderr, "defects must be within [0, 1]")
		os.Exit(1)
	}

	recruits := seed.Generate(*count, *defectRatio)
	if err := seed.WriteCSV(*out, recruits); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write dataset:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", *count, *out)
}
