// Package main provides the gradlab CLI, which runs the lesson cells.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/gradlab/internal/demo"
	"github.com/born-ml/gradlab/internal/grad"
)

const version = "v0.1.0-dev"

func usage() {
	fmt.Println("gradlab - gradients and Hessians of ‖Ax−b‖² via autodiff")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Usage:")
	fmt.Println("  gradlab list          List available demos")
	fmt.Println("  gradlab run <name>    Run one demo")
	fmt.Println("  gradlab all           Run every demo in lesson order")
	fmt.Println("  gradlab version       Show version")
}

func list() {
	fmt.Println("Demos:")
	for _, d := range demo.Registry() {
		fmt.Printf("  %-10s %s\n", d.Name, d.Summary)
	}
}

func run(d demo.Demo, e *grad.Engine) error {
	fmt.Printf("=== %s: %s ===\n\n", d.Name, d.Summary)
	if err := d.Run(os.Stdout, e); err != nil {
		return fmt.Errorf("demo %s: %w", d.Name, err)
	}
	fmt.Println()
	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("gradlab %s\n", version)

	case "list":
		list()

	case "run":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: gradlab run <name>")
			os.Exit(2)
		}
		d, err := demo.Lookup(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			list()
			os.Exit(2)
		}
		if err := run(d, grad.New()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	case "all":
		e := grad.New()
		for _, d := range demo.Registry() {
			if err := run(d, e); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}
