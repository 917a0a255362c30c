// Package main provides the seedot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/seedot-ml/seedot/fixed"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("seedot %s\n", version)
		fmt.Printf("narrowing:  %s\n", fixed.Narrowing)
		fmt.Printf("activation: %s\n", fixed.Activation)
	case "demo":
		if err := runDemo(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "demo: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("seedot - fixed-point kernels for quantized inference")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version and compiled-in modes")
	fmt.Println("  demo       Run a small fixed-point classifier")
}
