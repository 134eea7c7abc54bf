// Package main provides the neurox CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/neurox-ml/neurox"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("neurox %s\n", neurox.Version)
	case "xor":
		err = runXOR(os.Args[2:])
	case "train":
		err = runTrain(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("neurox %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Println("neurox - minimal feed-forward neural networks")
	fmt.Printf("Version: %s\n\n", neurox.Version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a small network on XOR")
	fmt.Println("  train      Train a classifier on a CSV file")
	fmt.Println("")
	fmt.Println("Run 'neurox <command> -h' for command flags.")
}
