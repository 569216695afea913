package random

import "testing"

func isAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func TestSeq(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		s := Seq(12)
		if len(s) != 12 {
			t.Fatalf("Seq(12) length = %d", len(s))
		}
		for _, r := range s {
			if !isAlphanumeric(r) {
				t.Fatalf("Seq produced non-alphanumeric rune %q in %q", r, s)
			}
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Error("Seq produced the same string every time")
	}
}

func TestHexSeq(t *testing.T) {
	s := HexSeq(32)
	if len(s) != 64 {
		t.Fatalf("HexSeq(32) length = %d, want 64", len(s))
	}
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			t.Fatalf("HexSeq produced non-hex rune %q in %q", r, s)
		}
	}
}
