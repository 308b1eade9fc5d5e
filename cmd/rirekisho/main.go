package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/go-rirekisho/rirekisho"
	"github.com/go-rirekisho/rirekisho/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	fl, args, err := parseFlags(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}

	if fl.version {
		fmt.Printf("rirekisho %s\n", Version)
		return ExitSuccess
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if fl.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	// The pool needs the merged style options up front, so peek at the
	// config here; runGenerate reloads and validates it properly.
	cfg := config.DefaultConfig()
	if fl.config != "" {
		if loaded, err := config.LoadConfig(fl.config); err == nil {
			cfg = loaded
		}
	}
	mergeFlags(fl, cfg)

	poolSize := rirekisho.ResolvePoolSize(fl.workers)
	if fl.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := newGeneratorPool(poolSize, generatorOptions(fl, cfg)...)
	defer pool.Close()

	if err := runGenerate(context.Background(), args, fl, pool, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
