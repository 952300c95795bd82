package auth

import (
	"crypto/rand"

	"github.com/dmitrijs2005/messagely/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt with a configurable work factor. Hashing is
// deliberately slow; the cost trades request latency against brute-force
// resistance.
type PasswordHasher struct {
	cost int

	// dummyDigest is a digest of a random value at the same cost as real
	// digests. Authenticate paths compare against it when the username is
	// unknown so that "no such user" and "wrong password" cost the same;
	// bcrypt takes the round count from the digest, so the cost here must
	// match the cost used for stored hashes.
	dummyDigest []byte
}

// NewPasswordHasher constructs a PasswordHasher. Costs outside bcrypt's
// valid range fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	dummy, err := bcrypt.GenerateFromPassword(seed, cost)
	if err != nil {
		panic(err)
	}
	common.WipeByteArray(seed)

	return &PasswordHasher{cost: cost, dummyDigest: dummy}
}

// Hash derives a salted one-way digest of raw. A fresh salt is generated per
// call, so two hashes of the same password differ.
func (h *PasswordHasher) Hash(raw string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether raw matches digest. A mismatch or a malformed
// digest returns false, never an error.
func (h *PasswordHasher) Verify(raw, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(raw)) == nil
}

// DummyVerify burns a bcrypt comparison without revealing anything. Callers
// use it on the unknown-user path to keep timing uniform with Verify.
func (h *PasswordHasher) DummyVerify(raw string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyDigest, []byte(raw))
}
