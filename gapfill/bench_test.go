package gapfill_test

import (
	"testing"

	"github.com/katalvlaran/allotment/catalog"
	"github.com/katalvlaran/allotment/gapfill"
	"github.com/katalvlaran/allotment/grid"
)

// BenchmarkSuggest ranks the built-in catalog for the center of a half-planted bed.
func BenchmarkSuggest(b *testing.B) {
	cat := catalog.Default()
	p, err := grid.NewPlot("bench", 3, 3)
	if err != nil {
		b.Fatalf("setup NewPlot failed: %v", err)
	}
	_ = p.Plant(0, 0, "carrots")
	_ = p.Plant(0, 1, "onions")
	_ = p.Plant(1, 0, "lettuce")
	_ = p.Plant(2, 2, "peas")
	center, _ := p.Cell(1, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gapfill.Suggest(cat, center, p, 5)
	}
}
