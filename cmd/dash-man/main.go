package main

import (
	"flag"
	"fmt"
	"os"

	"dashline/cmd/dash/root"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "dist/man", "output directory for generated man pages")
	flag.Parse()

	if err := root.GenerateManPages(outDir); err != nil {
		fmt.Fprintf(os.Stderr, "dash-man: %v\n", err)
		os.Exit(1)
	}
}
