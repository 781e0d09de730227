// Package device manages the locally generated device identifier: an opaque
// lookup key used when talking to the backend and the signing SDK.
package device

import (
	"github.com/google/uuid"

	"github.com/walletdemo/ncw-core/internal/localstore"
)

const deviceIDKey = "device-id"

// GenerateID returns a fresh random device identifier.
func GenerateID() string {
	return uuid.New().String()
}

// GetOrCreateID loads the persisted device id, generating and persisting a
// new one if none exists yet.
func GetOrCreateID(kv *localstore.Store) (string, error) {
	raw, err := kv.Get(deviceIDKey)
	if err != nil {
		return "", err
	}
	if raw != nil {
		return string(raw), nil
	}

	id := GenerateID()
	if err := SaveID(kv, id); err != nil {
		return "", err
	}
	return id, nil
}

// SaveID persists the device id, replacing any previous one.
func SaveID(kv *localstore.Store, id string) error {
	return kv.Put(deviceIDKey, []byte(id))
}
