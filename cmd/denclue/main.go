// Command denclue runs DENCLUE density-based clustering over a
// line-oriented file of comma-separated points and writes the discovered
// clusters to an output file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/andrecsouza/denclue"
)

func main() {
	dim := flag.Int("d", 0, "point dimension (required, > 0)")
	sigma := flag.Float64("s", 0, "Gaussian kernel bandwidth sigma (required, > 0)")
	xi := flag.Float64("x", 0, "minimum density threshold xi (required, > 0)")
	input := flag.String("i", "", "input file path (required)")
	output := flag.String("o", "", "output file path (required)")
	flag.Parse()

	if err := run(*dim, *sigma, *xi, *input, *output); err != nil {
		log.Printf("denclue: %v", err)
		flag.Usage()
		os.Exit(1)
	}
}

func run(dim int, sigma, xi float64, input, output string) error {
	if input == "" || output == "" {
		return fmt.Errorf("both -i and -o are required")
	}
	if dim < 1 || sigma <= 0 || xi <= 0 {
		return fmt.Errorf("-d, -s and -x must all be > 0")
	}

	cfg := denclue.Config{Dim: dim, Sigma: sigma, Xi: xi}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	ds, err := readDataset(in, dim)
	if err != nil {
		return err
	}

	clusters, err := denclue.Run(ds, cfg)
	if err != nil {
		return fmt.Errorf("running denclue: %w", err)
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer out.Close()

	if err := writeClusters(out, clusters); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
