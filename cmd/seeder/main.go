package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lucas-rech/desafio-prothera/internal/logger"
	"github.com/lucas-rech/desafio-prothera/internal/seed"
)

// seeder writes a synthetic roster that can be fed back through SEED_FILE.
// Logs go to stderr so the roster can be piped from stdout.
func main() {
	preset := flag.String("preset", "medium", "Roster preset: small, medium, large")
	count := flag.Int("count", 0, "Number of employees (overrides preset)")
	randSeed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	out := flag.String("out", "", "Output file (default stdout)")
	flag.Parse()

	ctx := context.Background()
	logger.InitLoggingTo(os.Stderr, "", os.Getenv("LOG_LEVEL"))

	n := *count
	if n <= 0 {
		n = seed.PresetSize(seed.Preset(*preset))
	}

	if err := run(n, *randSeed, *out, os.Stdout); err != nil {
		logger.ErrorLog(ctx, err, "Failed to write roster")
		os.Exit(1)
	}
	if *out != "" {
		logger.InfoLog(ctx, "Wrote %d employees to %s", n, *out)
	}
}

// run writes a roster of n employees to out, or to stdout when out is empty.
func run(n int, randSeed int64, out string, stdout io.Writer) (err error) {
	w := stdout
	if out != "" {
		f, createErr := os.Create(out)
		if createErr != nil {
			return fmt.Errorf("create output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output file: %w", cerr)
			}
		}()
		w = f
	}

	return seed.Write(w, seed.Generate(n, randSeed))
}
