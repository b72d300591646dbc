package plan

// palette is the fixed set of colors the weekly grid cycles through.
// Two process codes may share a color; that is fine for a display aid.
var palette = []string{
	"#4E79A7",
	"#F28E2B",
	"#E15759",
	"#76B7B2",
	"#59A14F",
	"#EDC948",
	"#B07AA1",
	"#FF9DA7",
	"#9C755F",
	"#BAB0AC",
	"#86BCB6",
	"#D37295",
}

// ColorForCode maps a process code to a palette color. The mapping is
// pure: the same code gives the same color on every call, every reload
// and every machine.
func ColorForCode(code string) string {
	hash := 0
	for _, r := range code {
		hash = int(r) + (hash << 5) - hash
	}
	if hash < 0 {
		hash = -hash
	}
	return palette[hash%len(palette)]
}
