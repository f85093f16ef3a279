package meshing

import (
	"testing"
)

func TestShowcaseVertexCount(t *testing.T) {
	b := NewBatch()
	var c Cylinders
	BuildShowcase(b, &c)

	body := ShowcaseSlices * ShowcaseStacks * 6
	disk := (ShowcaseStacks-1)*ShowcaseSlices*6 + ShowcaseSlices*3
	want := 4*body + 2*2*disk
	if got := b.VertexCount(); got != want {
		t.Fatalf("got %d vertices, want %d", got, want)
	}
}

func TestShowcaseVariantsStaySeparate(t *testing.T) {
	b := NewBatch()
	var c Cylinders
	BuildShowcase(b, &c)

	const eps = 1e-4
	seen := make(map[ShowcaseVariant]bool)
	for i, v := range b.Vertices() {
		variant := ShowcaseVariant(-1)
		for k, col := range showcaseColors {
			if v.Color == col {
				variant = ShowcaseVariant(k)
			}
		}
		if variant < 0 {
			t.Fatalf("vertex %d has unexpected color %v", i, v.Color)
		}
		seen[variant] = true

		p := v.Position
		o := ShowcaseOffset(variant)
		if dx := p[0] - o[0]; dx < -ShowcaseBase-eps || dx > ShowcaseBase+eps {
			t.Fatalf("variant %d vertex %v outside its column", variant, p)
		}
		if p[1] < -eps || p[1] > ShowcaseHeight+eps {
			t.Fatalf("variant %d vertex %v not upright", variant, p)
		}
	}
	if len(seen) != int(ShowcaseVariantCount) {
		t.Fatalf("saw %d variants, want %d", len(seen), ShowcaseVariantCount)
	}
}

func TestShowcaseOffsetsCentered(t *testing.T) {
	first := ShowcaseOffset(ShowPlain)
	last := ShowcaseOffset(ShowSlantCapped)
	if first[0] != -last[0] {
		t.Fatalf("row not centered: %v .. %v", first, last)
	}
	if last[0]-first[0] != 3*ShowcaseSpacing {
		t.Fatalf("unexpected spread %v", last[0]-first[0])
	}
}
