package main

import (
	"strings"
	"testing"

	"github.com/andrecsouza/denclue"
)

func TestReadDatasetParsesValidLines(t *testing.T) {
	input := "1,2\n3,4\n"
	ds, err := readDataset(strings.NewReader(input), 2)
	if err != nil {
		t.Fatalf("readDataset() error = %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ds.Len())
	}
}

func TestReadDatasetSkipsBlankLines(t *testing.T) {
	input := "1,2\n\n   \n3,4\n"
	ds, err := readDataset(strings.NewReader(input), 2)
	if err != nil {
		t.Fatalf("readDataset() error = %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (blank lines skipped)", ds.Len())
	}
}

func TestReadDatasetTolerantOfMalformedComponents(t *testing.T) {
	input := "1,garbage\nshort\n"
	ds, err := readDataset(strings.NewReader(input), 2)
	if err != nil {
		t.Fatalf("readDataset() error = %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ds.Len())
	}
	p := ds.Get(0)
	if p.At(0) != 1 || p.At(1) != 0 {
		t.Fatalf("first point = %v, want [1 0]", []float64{p.At(0), p.At(1)})
	}
}

func TestWriteClustersFormat(t *testing.T) {
	attractor := denclue.NewPoint([]float64{1, 2})
	member := denclue.NewPoint([]float64{1.1, 2.1})
	member.SetDensity(3.5)
	clusters := []denclue.Cluster{
		{Attractor: attractor, Members: []denclue.Point{member}},
	}

	var sb strings.Builder
	if err := writeClusters(&sb, clusters); err != nil {
		t.Fatalf("writeClusters() error = %v", err)
	}

	got := sb.String()
	if !strings.Contains(got, "Cluster 1\tAttractor 1,2") {
		t.Fatalf("output missing cluster header: %q", got)
	}
	if !strings.Contains(got, "DENSITY [3.5]") {
		t.Fatalf("output missing density line: %q", got)
	}
}

func TestWriteClustersOmitsEmpty(t *testing.T) {
	clusters := []denclue.Cluster{
		{Attractor: denclue.NewPoint([]float64{0, 0}), Members: nil},
	}
	var sb strings.Builder
	if err := writeClusters(&sb, clusters); err != nil {
		t.Fatalf("writeClusters() error = %v", err)
	}
	if sb.String() != "" {
		t.Fatalf("expected empty-member cluster to be omitted, got %q", sb.String())
	}
}
