// Package password derives and verifies stored password composites of the
// form hex(key) + "." + hex(salt).
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters; changing them invalidates every stored composite.
const (
	scryptN = 16384
	scryptR = 8
	scryptP = 1
	keyLen  = 64
	saltLen = 16
)

// Hash derives a composite from the plaintext under a fresh random salt.
// Hashing the same plaintext twice yields different composites.
func Hash(plaintext string) (string, error) {
	saltBytes := make([]byte, saltLen)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	// the hex-encoded salt string itself is the KDF salt
	salt := hex.EncodeToString(saltBytes)
	key, err := scrypt.Key([]byte(plaintext), []byte(salt), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	return hex.EncodeToString(key) + "." + salt, nil
}

// Verify reports whether the plaintext matches the stored composite. It fails
// closed: any malformed composite verifies as false rather than erroring.
func Verify(plaintext, composite string) bool {
	storedHex, salt, found := strings.Cut(composite, ".")
	if !found {
		return false
	}

	storedKey, err := hex.DecodeString(storedHex)
	if err != nil || len(storedKey) != keyLen {
		return false
	}

	key, err := scrypt.Key([]byte(plaintext), []byte(salt), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(storedKey, key) == 1
}
