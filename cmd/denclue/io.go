package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/andrecsouza/denclue"
)

// readDataset parses r as a line-oriented point file: one point per
// non-empty line, components comma-separated. A malformed or missing
// component defaults to 0; extra components beyond dim are ignored. This
// intentionally does not use encoding/csv, whose strict field-count and
// quoting rules are a worse fit for that tolerant contract.
func readDataset(r io.Reader, dim int) (*denclue.Dataset, error) {
	ds := denclue.NewDataset(dim)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ds.Add(denclue.ParsePoint(line, dim))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("denclue: reading input: %w", err)
	}
	return ds, nil
}

// writeClusters renders clusters to w in discovery order:
//
//	Cluster <n>	Attractor <attractor-key>
//		(<v0>,<v1>,...,<v_{d-1}>) DENSITY [<d>]
//		...
//
// Clusters whose member list is empty are omitted.
func writeClusters(w io.Writer, clusters []denclue.Cluster) error {
	bw := bufio.NewWriter(w)
	n := 0
	for _, c := range clusters {
		if len(c.Members) == 0 {
			continue
		}
		n++
		if _, err := fmt.Fprintf(bw, "Cluster %d\tAttractor %s\n", n, c.Attractor); err != nil {
			return err
		}
		for _, m := range c.Members {
			if _, err := fmt.Fprintf(bw, "\t(%s) DENSITY [%g]\n", m, m.Density()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
