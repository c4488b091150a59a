package digest

import (
	"errors"
	"strings"
	"testing"
)

func TestKnownVectors(t *testing.T) {
	cases := []struct {
		name     string
		strategy Strategy
		input    string
		want     string
	}{
		{"md5 123", MD5{}, "123", "202cb962ac59075b964b07152d234b70"},
		{"md5 empty", MD5{}, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"sha1 abc", SHA1{}, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha1 empty", SHA1{}, "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"sha3 empty", SHA3{}, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.strategy.Digest(tc.input)
			if err != nil {
				t.Fatalf("digest: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDigestDeterministicFixedLength(t *testing.T) {
	lengths := map[Strategy]int{MD5{}: 32, SHA1{}: 40, SHA3{}: 64}
	for strategy, want := range lengths {
		for _, input := range []string{"", "1", "15", "5110secret", "заказ"} {
			first, err := strategy.Digest(input)
			if err != nil {
				t.Fatalf("%T digest %q: %v", strategy, input, err)
			}
			second, _ := strategy.Digest(input)
			if first != second {
				t.Fatalf("%T not deterministic for %q: %s vs %s", strategy, input, first, second)
			}
			if len(first) != want {
				t.Fatalf("%T expected %d hex chars, got %d", strategy, want, len(first))
			}
			if first != strings.ToLower(first) {
				t.Fatalf("%T digest not lowercase: %s", strategy, first)
			}
		}
	}
}

func TestDigestRejectsInvalidUTF8(t *testing.T) {
	for _, strategy := range []Strategy{MD5{}, SHA1{}, SHA3{}} {
		if _, err := strategy.Digest("\xff\xfe"); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%T expected ErrInvalidInput, got %v", strategy, err)
		}
	}
}

func TestLookup(t *testing.T) {
	for name, want := range map[string]Strategy{"md5": MD5{}, " SHA1 ": SHA1{}, "sha3-256": SHA3{}} {
		got, err := Lookup(name)
		if err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
		if got != want {
			t.Fatalf("lookup %q: expected %T, got %T", name, want, got)
		}
	}

	if _, err := Lookup("crc32"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}
