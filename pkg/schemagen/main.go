package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ironbus-io/ironbus-core/pkg/logger"
)

func main() {
	outDir := flag.String("out", "./schemas", "output directory for the generated reference")
	flag.Parse()

	absOutDir, err := filepath.Abs(*outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting path to absolute: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(logger.DefaultConfig())
	ctx := logger.ContextWithLogger(context.Background(), log)
	generator := &Generator{}
	if err := generator.Generate(ctx, absOutDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating reference: %v\n", err)
		os.Exit(1)
	}
}
