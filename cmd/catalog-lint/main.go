package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/pradom/storefront/internal/catalog"
)

func main() {
	file := flag.String("file", "", "catalog YAML file to check (default: the embedded catalog)")
	quiet := flag.Bool("q", false, "only report problems")
	flag.Parse()

	os.Exit(run(*file, *quiet, os.Stdout, os.Stderr))
}

func run(path string, quiet bool, stdout, stderr io.Writer) int {
	var (
		cat *catalog.Catalog
		err error
	)
	if path == "" {
		cat, err = catalog.Default()
	} else {
		var raw []byte
		raw, err = os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "read %s: %v\n", path, err)
			return 2
		}
		cat, err = catalog.Parse(raw)
	}

	if err != nil {
		problems := multierr.Errors(err)
		for _, problem := range problems {
			fmt.Fprintf(stderr, "  - %v\n", problem)
		}
		fmt.Fprintf(stderr, "%s: %d problem(s)\n", source(path), len(problems))
		return 1
	}

	if quiet {
		return 0
	}

	fmt.Fprintf(stdout, "%s: %d products in %d categories\n", source(path), cat.Len(), len(cat.Categories()))
	for _, category := range cat.Categories() {
		products := cat.Filter(category, "")
		options := 0
		for _, p := range products {
			options += len(p.Options)
		}
		fmt.Fprintf(stdout, "  %-14s %3d products %4d options\n", category, len(products), options)
	}
	return 0
}

func source(path string) string {
	if path == "" {
		return "embedded catalog"
	}
	return path
}
