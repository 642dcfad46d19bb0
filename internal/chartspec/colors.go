package chartspec

// default palette, chosen for pairwise distinguishability under common
// color-vision deficiencies
var defaultPalette = []string{
	"#3b82f6", // blue
	"#ef4444", // red
	"#22c55e", // green
	"#f59e0b", // amber
	"#8b5cf6", // violet
	"#06b6d4", // cyan
	"#ec4899", // pink
	"#64748b", // slate
	"#14b8a6", // teal
	"#f97316", // orange
}

// AssignColors returns a copy of datasets where every dataset lacking an
// explicit color gets one from the default palette, cycling by position.
// Assignment never consults dataset content, so repeated runs over the same
// ordering produce identical colors.
func AssignColors(datasets []Dataset) []Dataset {
	out := make([]Dataset, len(datasets))
	copy(out, datasets)
	for i := range out {
		if out[i].Color == "" {
			out[i].Color = defaultPalette[i%len(defaultPalette)]
		}
	}
	return out
}
