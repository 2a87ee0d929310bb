package stats

// Palette is the chart color sequence, assigned by emission order
var Palette = []string{
	"#667eea",
	"#764ba2",
	"#f093fb",
	"#f5576c",
	"#11998e",
	"#38ef7d",
	"#ffa502",
	"#ff6b35",
	"#004e89",
	"#1a7f64",
}

// ColorAt returns the palette entry for position i, cycling past the end
func ColorAt(i int) string {
	return Palette[i%len(Palette)]
}
