package crypto

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPinHasher_HashAndVerify(t *testing.T) {
	h := NewPinHasher(bcrypt.MinCost, nil)

	hash, err := h.Hash("1234")
	if err != nil {
		t.Fatalf("unexpected error on Hash: %v", err)
	}
	if hash == "1234" {
		t.Fatal("expected a one-way hash, got the raw pin back")
	}

	if !h.Verify("1234", hash) {
		t.Error("expected correct pin to verify")
	}
	if h.Verify("4321", hash) {
		t.Error("expected wrong pin to fail verification")
	}
}

func TestPinHasher_SaltedHashes(t *testing.T) {
	h := NewPinHasher(bcrypt.MinCost, nil)

	first, _ := h.Hash("0000")
	second, _ := h.Hash("0000")

	if first == second {
		t.Error("expected distinct salted hashes for the same pin")
	}
}

func TestNewPinHasher_OutOfRangeCost(t *testing.T) {
	h := NewPinHasher(1000, nil)

	if h.cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost for out-of-range input, got %d", h.cost)
	}
}
