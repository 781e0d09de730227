package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/walletdemo/ncw-core/internal/device"
	"github.com/walletdemo/ncw-core/internal/passphrase"
)

// Login authenticates against the demo server. Collaborator failures are
// not returned; they surface as LoginStatus == StatusFailed.
func (s *Store) Login(ctx context.Context) error {
	client, _, err := s.requireClient()
	if err != nil {
		return err
	}

	s.update(func(st *State) {
		st.UserID = ""
		st.LoginStatus = StatusStarted
	})

	userID, err := client.Login(ctx)
	if err != nil {
		s.logger.Error("login failed", zap.Error(err))
		s.update(func(st *State) {
			st.UserID = ""
			st.LoginStatus = StatusFailed
		})
		return nil
	}

	s.update(func(st *State) {
		st.UserID = userID
		st.LoginStatus = StatusSuccess
	})
	return nil
}

// AssignCurrentDevice binds the current device id to a wallet on the
// backend. Collaborator failures are not returned; they surface as
// AssignDeviceStatus == StatusFailed with the wallet binding cleared.
func (s *Store) AssignCurrentDevice(ctx context.Context) error {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return err
	}

	s.update(func(st *State) {
		st.WalletID = ""
		st.AssignDeviceStatus = StatusStarted
	})

	walletID, err := client.AssignDevice(ctx, deviceID)
	if err != nil {
		s.logger.Error("device assignment failed",
			zap.String("device_id", deviceID),
			zap.Error(err))
		s.update(func(st *State) {
			st.WalletID = ""
			st.AssignDeviceStatus = StatusFailed
		})
		return nil
	}

	s.update(func(st *State) {
		st.WalletID = walletID
		st.AssignDeviceStatus = StatusSuccess
	})
	return nil
}

// GenerateNewDeviceID replaces the device id with a fresh one, persists it,
// and resets the wallet binding and assignment status: a wallet assigned to
// the old device id is meaningless for the new one.
func (s *Store) GenerateNewDeviceID() error {
	return s.replaceDeviceID(device.GenerateID())
}

// SetDeviceID replaces the device id with a caller-supplied one and
// persists it. Like GenerateNewDeviceID it resets the wallet binding and
// assignment status.
func (s *Store) SetDeviceID(id string) error {
	return s.replaceDeviceID(id)
}

func (s *Store) replaceDeviceID(id string) error {
	if err := device.SaveID(s.kv, id); err != nil {
		return err
	}

	s.update(func(st *State) {
		st.DeviceID = id
		st.WalletID = ""
		st.AssignDeviceStatus = StatusNotStarted
	})
	return nil
}

// SetPassphrase persists the given backup passphrase.
func (s *Store) SetPassphrase(value string) error {
	if err := s.kv.Put(passphraseKey, []byte(value)); err != nil {
		return err
	}

	s.update(func(st *State) {
		st.Passphrase = value
	})
	return nil
}

// RegeneratePassphrase generates, persists and returns a new backup
// passphrase, overwriting the stored one.
func (s *Store) RegeneratePassphrase() (string, error) {
	value, err := passphrase.Random()
	if err != nil {
		return "", err
	}
	if err := s.SetPassphrase(value); err != nil {
		return "", err
	}
	return value, nil
}
