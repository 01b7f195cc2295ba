package id

import (
	"regexp"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := NewID32()
		if !reHex32.MatchString(got) {
			t.Fatalf("not 32-char lowercase hex: %q", got)
		}
	}
}

func TestNewID32_Unique(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		got := NewID32()
		if seen[got] {
			t.Fatalf("duplicate id generated: %s", got)
		}
		seen[got] = true
	}
}
