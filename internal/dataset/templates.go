package dataset

import "github.com/born-ml/glyph/internal/bitmap"

// NumClasses is the number of digit classes the generators emit.
const NumClasses = 10

// Classic 5x7 dot-matrix digit glyphs. Every glyph touches all four edges
// of its grid, so normalization leaves the templates unchanged.
var templates = [NumClasses]bitmap.Bitmap{
	bitmap.MustParse(
		".###.",
		"#...#",
		"#..##",
		"#.#.#",
		"##..#",
		"#...#",
		".###.",
	),
	bitmap.MustParse(
		"..#..",
		".##..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"#####",
	),
	bitmap.MustParse(
		".###.",
		"#...#",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#####",
	),
	bitmap.MustParse(
		".###.",
		"#...#",
		"....#",
		"..##.",
		"....#",
		"#...#",
		".###.",
	),
	bitmap.MustParse(
		"...#.",
		"..##.",
		".#.#.",
		"#..#.",
		"#####",
		"...#.",
		"...#.",
	),
	bitmap.MustParse(
		"#####",
		"#....",
		"#....",
		"####.",
		"....#",
		"#...#",
		".###.",
	),
	bitmap.MustParse(
		"..##.",
		".#...",
		"#....",
		"####.",
		"#...#",
		"#...#",
		".###.",
	),
	bitmap.MustParse(
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		".#...",
		".#...",
	),
	bitmap.MustParse(
		".###.",
		"#...#",
		"#...#",
		".###.",
		"#...#",
		"#...#",
		".###.",
	),
	bitmap.MustParse(
		".###.",
		"#...#",
		"#...#",
		".####",
		"....#",
		"...#.",
		".##..",
	),
}

// Template returns a copy of the dot-matrix glyph for digit d. It panics
// unless 0 <= d < NumClasses.
func Template(d int) bitmap.Bitmap {
	return templates[d].Clone()
}
