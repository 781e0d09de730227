// Package ncwsim is an in-process stand-in for the signing SDK, used by the
// demo binary when the real SDK is not linked in. It keeps per-algorithm key
// shares in the secure storage provider and acknowledges relayed protocol
// messages, which is enough to drive the full app flow against the demo
// server. It produces no real signatures.
package ncwsim

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/walletdemo/ncw-core/internal/ncw"
)

const (
	physicalDeviceIDKey = "physical-device-id"
	keyShareKeyPrefix   = "keyshare:"
	keyShareLength      = 32
)

var algorithms = []ncw.MPCAlgorithm{
	ncw.AlgorithmECDSASecp256k1,
	ncw.AlgorithmEDDSAEd25519,
}

// SDK is a simulated signing SDK handle.
type SDK struct {
	opts             ncw.Options
	physicalDeviceID string

	mu       sync.Mutex
	disposed bool
	keys     map[ncw.MPCAlgorithm]ncw.KeyDescriptor
}

var _ ncw.SDK = (*SDK)(nil)

// New constructs a simulated SDK handle. Key shares and the physical device
// id are created on first use and persisted through the secure storage
// provider, so a handle for the same device id resumes the same identity.
func New(ctx context.Context, opts ncw.Options) (ncw.SDK, error) {
	if opts.DeviceID == "" {
		return nil, fmt.Errorf("device id is required")
	}
	if opts.SecureStorage == nil {
		return nil, fmt.Errorf("secure storage is required")
	}

	s := &SDK{
		opts: opts,
		keys: make(map[ncw.MPCAlgorithm]ncw.KeyDescriptor),
	}

	physicalDeviceID, err := s.loadOrCreate(ctx, physicalDeviceIDKey, func() ([]byte, error) {
		return []byte(uuid.New().String()), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to establish physical device id: %w", err)
	}
	s.physicalDeviceID = string(physicalDeviceID)

	for _, algorithm := range algorithms {
		if err := s.ensureKeyShare(ctx, algorithm); err != nil {
			return nil, err
		}
	}

	if opts.Logger != nil {
		opts.Logger.Info("simulated sdk ready for device " + opts.DeviceID)
	}
	return s, nil
}

// PhysicalDeviceID returns the persisted simulated hardware identity.
func (s *SDK) PhysicalDeviceID() string {
	return s.physicalDeviceID
}

// HandleIncomingMessage acknowledges a relayed protocol message by echoing a
// receipt through the message sink.
func (s *SDK) HandleIncomingMessage(ctx context.Context, message string) error {
	if err := s.live(); err != nil {
		return err
	}
	if s.opts.Logger != nil {
		s.opts.Logger.Debug("handling incoming protocol message")
	}
	if s.opts.MessageSink == nil {
		return nil
	}
	return s.opts.MessageSink.HandleOutgoingMessage(ctx, "ack:"+s.physicalDeviceID)
}

// KeysStatus returns the descriptor of every simulated key.
func (s *SDK) KeysStatus(context.Context) (map[ncw.MPCAlgorithm]ncw.KeyDescriptor, error) {
	if err := s.live(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[ncw.MPCAlgorithm]ncw.KeyDescriptor, len(s.keys))
	for algorithm, descriptor := range s.keys {
		out[algorithm] = descriptor
	}
	return out, nil
}

// Takeover regenerates every key share, simulating the migration of signing
// ownership to this device, and emits a descriptor-changed event per key.
func (s *SDK) Takeover(ctx context.Context) error {
	if err := s.live(); err != nil {
		return err
	}

	for _, algorithm := range algorithms {
		if err := s.opts.SecureStorage.Remove(ctx, keyShareKeyPrefix+string(algorithm)); err != nil {
			return fmt.Errorf("failed to drop key share for %s: %w", algorithm, err)
		}
		if err := s.ensureKeyShare(ctx, algorithm); err != nil {
			return err
		}
		if s.opts.EventHandler != nil {
			s.mu.Lock()
			descriptor := s.keys[algorithm]
			s.mu.Unlock()
			s.opts.EventHandler.HandleEvent(ctx, ncw.KeyDescriptorChangedEvent{Descriptor: descriptor})
		}
	}
	return nil
}

// Dispose releases the handle.
func (s *SDK) Dispose() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return fmt.Errorf("sdk handle already disposed")
	}
	s.disposed = true
	return nil
}

func (s *SDK) live() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return fmt.Errorf("sdk handle is disposed")
	}
	return nil
}

func (s *SDK) ensureKeyShare(ctx context.Context, algorithm ncw.MPCAlgorithm) error {
	share, err := s.loadOrCreate(ctx, keyShareKeyPrefix+string(algorithm), func() ([]byte, error) {
		raw := make([]byte, keyShareLength)
		if _, err := io.ReadFull(rand.Reader, raw); err != nil {
			return nil, err
		}
		return raw, nil
	})
	if err != nil {
		return fmt.Errorf("failed to establish key share for %s: %w", algorithm, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[algorithm] = ncw.KeyDescriptor{
		KeyID:     uuid.NewSHA1(uuid.NameSpaceOID, share).String(),
		Algorithm: algorithm,
		KeyStatus: "READY",
		BackedUp:  false,
	}
	return nil
}

func (s *SDK) loadOrCreate(ctx context.Context, key string, create func() ([]byte, error)) ([]byte, error) {
	existing, err := s.opts.SecureStorage.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	value, err := create()
	if err != nil {
		return nil, err
	}
	if err := s.opts.SecureStorage.Set(ctx, key, value); err != nil {
		return nil, err
	}
	return value, nil
}
