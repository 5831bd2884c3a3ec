// Package config holds configuration helpers shared by the binaries.
package config

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// ErrAuthorityMissing is returned when no authority key is configured.
var ErrAuthorityMissing = errors.New("authority key is not configured")

// LoadAuthority parses the organizer's signing key. Two encodings are accepted: the JSON integer
// array written by solana-keygen and a base58 string as exported by wallets.
func LoadAuthority(raw string) (solana.PrivateKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrAuthorityMissing
	}

	var key solana.PrivateKey
	if strings.HasPrefix(raw, "[") {
		var values []int
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return nil, fmt.Errorf("decode authority key: %w", err)
		}
		key = make(solana.PrivateKey, 0, len(values))
		for i, v := range values {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("decode authority key: byte %d out of range: %d", i, v)
			}
			key = append(key, byte(v))
		}
	} else {
		var err error
		key, err = solana.PrivateKeyFromBase58(raw)
		if err != nil {
			return nil, fmt.Errorf("decode authority key: %w", err)
		}
	}

	if err := validateKeypair(key); err != nil {
		return nil, err
	}
	return key, nil
}

func validateKeypair(key solana.PrivateKey) error {
	if len(key) != ed25519.PrivateKeySize {
		return fmt.Errorf("authority key must be %d bytes, got %d", ed25519.PrivateKeySize, len(key))
	}
	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], key[ed25519.SeedSize:]) {
		return errors.New("authority key: public half does not match the seed")
	}
	return nil
}
