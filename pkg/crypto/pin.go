package crypto

import (
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// PinHasher hashes and verifies account pins with bcrypt. Each hash carries
// its own salt, and verification runs in constant time relative to the
// stored hash.
type PinHasher struct {
	cost   int
	logger *slog.Logger
}

func NewPinHasher(cost int, logger *slog.Logger) *PinHasher {
	if logger == nil {
		logger = slog.Default()
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PinHasher{
		cost:   cost,
		logger: logger,
	}
}

func (h *PinHasher) Hash(rawPin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPin), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash pin: %w", err)
	}
	return string(hash), nil
}

func (h *PinHasher) Verify(rawPin, pinHash string) bool {
	if err := bcrypt.CompareHashAndPassword([]byte(pinHash), []byte(rawPin)); err != nil {
		h.logger.Warn("Pin verification failed")
		return false
	}
	return true
}
