package id

import (
	"regexp"
	"testing"
)

var reID32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_Format(t *testing.T) {
	for i := 0; i < 20; i++ {
		got := NewID32()
		if !reID32.MatchString(got) {
			t.Fatalf("not 32-char lowercase hex: %q", got)
		}
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 500
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := NewID32()
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate after %d draws: %q", i, v)
		}
		seen[v] = struct{}{}
	}
}
