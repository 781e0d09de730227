// Package securestorage implements the encrypted-at-rest storage the
// signing SDK requires for its key material. Values are sealed with
// AES-256-GCM under a key derived from a user-supplied password via scrypt,
// and persisted in the local key-value store, namespaced per device id.
package securestorage

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"

	"github.com/walletdemo/ncw-core/internal/localstore"
)

const (
	saltLength = 16
	keyLength  = 32

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// ErrCorruptValue is returned when a stored blob is too short to contain
// its salt and nonce.
var ErrCorruptValue = errors.New("stored value is corrupt")

// PasswordSupplier asynchronously obtains the storage password from the
// user. Implementations must not fail when the user provides nothing; they
// return an empty password instead.
type PasswordSupplier interface {
	SupplyPassword(ctx context.Context) (string, error)
}

// PasswordSupplierFunc adapts a function to the PasswordSupplier interface.
type PasswordSupplierFunc func(ctx context.Context) (string, error)

// SupplyPassword calls f(ctx).
func (f PasswordSupplierFunc) SupplyPassword(ctx context.Context) (string, error) {
	return f(ctx)
}

// Storage is a password-encrypted storage provider bound to one device id.
// It satisfies the SDK's secure-storage contract.
type Storage struct {
	deviceID  string
	kv        *localstore.Store
	passwords PasswordSupplier
}

// New creates a Storage bound to the given device id.
func New(deviceID string, kv *localstore.Store, passwords PasswordSupplier) *Storage {
	return &Storage{
		deviceID:  deviceID,
		kv:        kv,
		passwords: passwords,
	}
}

// Get retrieves and decrypts the value stored under key. A missing key
// yields (nil, nil).
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.kv.Get(s.storageKey(key))
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}

	password, err := s.passwords.SupplyPassword(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain storage password: %w", err)
	}

	return open(password, blob)
}

// Set encrypts value and stores it under key, replacing any previous value.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	password, err := s.passwords.SupplyPassword(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain storage password: %w", err)
	}

	blob, err := seal(password, value)
	if err != nil {
		return err
	}

	return s.kv.Put(s.storageKey(key), blob)
}

// Remove deletes the value stored under key.
func (s *Storage) Remove(ctx context.Context, key string) error {
	return s.kv.Delete(s.storageKey(key))
}

func (s *Storage) storageKey(key string) string {
	return "secure:" + s.deviceID + ":" + key
}

// seal produces salt || nonce || ciphertext.
func seal(password string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	aead, err := newAEAD(password, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	blob := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+aead.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return aead.Seal(blob, nonce, plaintext, nil), nil
}

func open(password string, blob []byte) ([]byte, error) {
	if len(blob) < saltLength {
		return nil, ErrCorruptValue
	}
	salt, rest := blob[:saltLength], blob[saltLength:]

	aead, err := newAEAD(password, salt)
	if err != nil {
		return nil, err
	}

	if len(rest) < aead.NonceSize() {
		return nil, ErrCorruptValue
	}
	nonce, ciphertext := rest[:aead.NonceSize()], rest[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt stored value: %w", err)
	}
	return plaintext, nil
}

func newAEAD(password string, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, fmt.Errorf("failed to derive storage key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
