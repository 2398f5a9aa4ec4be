package generator

import "testing"

func TestSeededGeneratorRepeats(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: expected equal values, got %d and %d", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Fatalf("expected seed 42, got %d", a.Seed())
	}
}

func TestPick(t *testing.T) {
	g := NewSeeded(1)
	if _, ok := g.Pick(nil); ok {
		t.Fatalf("expected no pick from empty list")
	}
	words := []string{"silkworm", "keyboard", "sunlight"}
	for i := 0; i < 50; i++ {
		word, ok := g.Pick(words)
		if !ok {
			t.Fatalf("expected a pick")
		}
		if word != "silkworm" && word != "keyboard" && word != "sunlight" {
			t.Fatalf("unexpected pick %q", word)
		}
	}
}

func TestIntnInRange(t *testing.T) {
	g := New()
	for i := 0; i < 100; i++ {
		if v := g.Intn(3); v < 0 || v >= 3 {
			t.Fatalf("value out of range: %d", v)
		}
	}
}
