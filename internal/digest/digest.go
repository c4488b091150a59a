package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidInput is returned when the input is not a valid UTF-8 string.
	ErrInvalidInput = errors.New("invalid digest input")

	// ErrUnknownAlgorithm is returned by Lookup for unsupported algorithm names.
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")
)

// Strategy computes a deterministic lowercase hex digest of its input.
// Implementations are stateless and safe for concurrent use.
type Strategy interface {
	Digest(input string) (string, error)
}

// MD5 produces 128-bit digests (32 hex characters).
type MD5 struct{}

// Digest hashes input with MD5.
func (MD5) Digest(input string) (string, error) {
	return sum(md5.New(), input)
}

// SHA1 produces 160-bit digests (40 hex characters).
type SHA1 struct{}

// Digest hashes input with SHA-1.
func (SHA1) Digest(input string) (string, error) {
	return sum(sha1.New(), input)
}

// SHA3 produces 256-bit SHA3 digests (64 hex characters).
type SHA3 struct{}

// Digest hashes input with SHA3-256.
func (SHA3) Digest(input string) (string, error) {
	return sum(sha3.New256(), input)
}

func sum(h hash.Hash, input string) (string, error) {
	if !utf8.ValidString(input) {
		return "", ErrInvalidInput
	}
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Lookup resolves a strategy by algorithm name: md5, sha1 or sha3-256.
func Lookup(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "md5":
		return MD5{}, nil
	case "sha1", "sha-1":
		return SHA1{}, nil
	case "sha3", "sha3-256":
		return SHA3{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
