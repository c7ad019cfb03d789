package imgconv

import (
	"github.com/katalvlaran/mandala/puzzle"
)

// Document assembles the serializable puzzle document for r. Source is
// recorded in the generator params so a document can be traced back to
// the image it came from; pass the base name, not the full path.
// Photo-derived puzzles have no border or lead regions, so NonPlayable
// is always empty.
func (r *Result) Document(source string) *puzzle.Document {
	entries := make([]puzzle.PaletteEntry, len(r.Palette))
	for i, c := range r.Palette {
		entries[i] = puzzle.PaletteEntry{
			Color:  [3]int{int(c[0]), int(c[1]), int(c[2])},
			Number: i + 1,
		}
	}
	return &puzzle.Document{
		Version:     puzzle.FormatVersion,
		Width:       r.Grid.Width,
		Height:      r.Grid.Height,
		Palette:     entries,
		RegionColor: r.RegionColor,
		NonPlayable: []int32{},
		Generator: puzzle.GeneratorInfo{
			Name:   "image",
			Params: map[string]any{"source": source},
		},
	}
}

// WriteDir exports r into dir as the standard puzzle.json +
// region_ids.png pair.
func (r *Result) WriteDir(dir, source string) error {
	return puzzle.WriteArtifacts(dir, r.Document(source), r.Grid)
}
