package plan

import (
	"fmt"
	"testing"
)

func TestColorForCodeDeterministic(t *testing.T) {
	first := ColorForCode("GLAZING")
	for i := 0; i < 100; i++ {
		if got := ColorForCode("GLAZING"); got != first {
			t.Fatalf("call %d: expected %s got %s", i, first, got)
		}
	}
}

func TestColorForCodeAlwaysInPalette(t *testing.T) {
	inPalette := func(color string) bool {
		for _, c := range palette {
			if c == color {
				return true
			}
		}
		return false
	}
	codes := []string{"", "MACHINING", "SANDING", "GLAZING", "SPRAYING", "CNC", "FITTING", "ASSEMBLY", "漆"}
	for _, code := range codes {
		if color := ColorForCode(code); !inPalette(color) {
			t.Fatalf("code %q: color %q not in palette", code, color)
		}
	}
}

// Over a large sample of realistic codes the palette should be used
// roughly evenly: every color hit, none dominating.
func TestColorForCodeDistribution(t *testing.T) {
	counts := make(map[string]int)
	total := 600
	for i := 0; i < total; i++ {
		counts[ColorForCode(fmt.Sprintf("PROC-%03d", i))]++
	}
	if len(counts) != len(palette) {
		t.Fatalf("expected all %d palette colors in use got %d", len(palette), len(counts))
	}
	for color, n := range counts {
		if n > total/3 {
			t.Fatalf("color %s claimed %d of %d codes", color, n, total)
		}
	}
}
