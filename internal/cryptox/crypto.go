// Package cryptox computes the one-way password digests stored by the
// user database.
package cryptox

import (
	"crypto"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/dmitrijs2005/gophusers/internal/common"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Supported algorithm names. All of them produce 512-bit digests, so every
// stored digest is 128 hex characters regardless of the choice.
const (
	AlgorithmSHA512     = "sha512"
	AlgorithmSHA3_512   = "sha3-512"
	AlgorithmBLAKE2b512 = "blake2b-512"

	DigestHexLen = 128
)

// Hasher turns a password into its hex digest.
type Hasher struct {
	algorithm string
	newHash   func() hash.Hash
}

// primitives maps an algorithm name to a constructor. The constructor
// returns an error when the primitive cannot be obtained at runtime.
var primitives = map[string]func() (func() hash.Hash, error){
	AlgorithmSHA512: func() (func() hash.Hash, error) {
		if !crypto.SHA512.Available() {
			return nil, fmt.Errorf("%w: %s not linked into binary", common.ErrHashUnavailable, AlgorithmSHA512)
		}
		return sha512.New, nil
	},
	AlgorithmSHA3_512: func() (func() hash.Hash, error) {
		return sha3.New512, nil
	},
	AlgorithmBLAKE2b512: func() (func() hash.Hash, error) {
		// unkeyed BLAKE2b never fails; probe once so a broken build surfaces here
		if _, err := blake2b.New512(nil); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrHashUnavailable, AlgorithmBLAKE2b512, err)
		}
		return func() hash.Hash {
			h, _ := blake2b.New512(nil)
			return h
		}, nil
	},
}

// NewHasher returns a Hasher for the named algorithm. An empty name selects
// SHA-512. Unknown names yield common.ErrHashUnavailable.
func NewHasher(algorithm string) (*Hasher, error) {
	name := strings.ToLower(strings.TrimSpace(algorithm))
	if name == "" {
		name = AlgorithmSHA512
	}

	ctor, ok := primitives[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrHashUnavailable, algorithm)
	}

	newHash, err := ctor()
	if err != nil {
		return nil, err
	}

	return &Hasher{algorithm: name, newHash: newHash}, nil
}

// Algorithm returns the normalized algorithm name.
func (h *Hasher) Algorithm() string {
	return h.algorithm
}

// Digest hashes the UTF-8 bytes of password and returns the lowercase hex
// encoding, always DigestHexLen characters long.
func (h *Hasher) Digest(password string) string {
	d := h.newHash()
	d.Write([]byte(password))
	return hex.EncodeToString(d.Sum(nil))
}

// Equal compares two digests in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
