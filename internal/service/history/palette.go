package history

// Palette is the ordered set of entry colors, cycled by insertion index.
var Palette = [...]string{
	"#0ea5e9", // sky
	"#f97316", // orange
	"#22c55e", // green
	"#e11d48", // rose
	"#a855f7", // purple
	"#eab308", // yellow
	"#14b8a6", // teal
	"#ec4899", // pink
	"#6366f1", // indigo
}

// ColorAt returns the palette color for the k-th ingested entry.
func ColorAt(k int) string {
	if k < 0 {
		k = -k
	}
	return Palette[k%len(Palette)]
}
