// Package ncw defines the contracts this application depends on from the
// multi-party-computation signing SDK. The SDK itself (key generation,
// threshold signing, transport encryption) is an external collaborator;
// everything here is the narrow surface the app store consumes.
package ncw

import "context"

// MPCAlgorithm identifies a signing algorithm supported by the SDK.
type MPCAlgorithm string

const (
	AlgorithmECDSASecp256k1 MPCAlgorithm = "MPC_CMP_ECDSA_SECP256K1"
	AlgorithmEDDSAEd25519   MPCAlgorithm = "MPC_CMP_EDDSA_ED25519"
)

// KeyDescriptor describes the current state of one generated signing key.
type KeyDescriptor struct {
	KeyID     string       `json:"keyId"`
	Algorithm MPCAlgorithm `json:"algorithm"`
	KeyStatus string       `json:"keyStatus"`
	BackedUp  bool         `json:"backedUp"`
}

// MessageSink receives outgoing protocol messages produced by the SDK and
// forwards them to the backend relay.
type MessageSink interface {
	HandleOutgoingMessage(ctx context.Context, message string) error
}

// SecureStorage supplies encrypted-at-rest storage for SDK key material.
type SecureStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Logger is the logging surface handed to the SDK.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Options carries everything needed to construct an SDK handle.
type Options struct {
	Env           string
	DeviceID      string
	MessageSink   MessageSink
	EventHandler  EventHandler
	SecureStorage SecureStorage
	Logger        Logger
}

// SDK is a live handle to the signing SDK, bound to one device id.
// At most one handle exists at a time.
type SDK interface {
	// PhysicalDeviceID returns the identifier the SDK derives internally,
	// distinct from the locally generated device id.
	PhysicalDeviceID() string

	// HandleIncomingMessage feeds a protocol message received from the
	// backend relay into the SDK.
	HandleIncomingMessage(ctx context.Context, message string) error

	// KeysStatus returns the current key descriptor for every algorithm.
	KeysStatus(ctx context.Context) (map[MPCAlgorithm]KeyDescriptor, error)

	// Takeover migrates signing ownership of the wallet's keys to this
	// device. Callers should refresh the key status afterwards.
	Takeover(ctx context.Context) error

	// Dispose releases the handle. The handle must not be used afterwards.
	Dispose() error
}

// Factory constructs an SDK handle from the given options.
type Factory func(ctx context.Context, opts Options) (SDK, error)
