package store

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/walletdemo/ncw-core/internal/client/backend"
	"github.com/walletdemo/ncw-core/internal/ncw"
	"github.com/walletdemo/ncw-core/internal/securestorage"
)

// sdkSession owns one SDK handle together with its two backend
// subscriptions. Listener callbacks may still fire after teardown has
// begun; the closed flag makes them no-ops.
type sdkSession struct {
	sdk           ncw.SDK
	messagesUnsub func()
	txsUnsub      func()
	closed        atomic.Bool
}

// close cancels the subscriptions and disposes the handle. Partial
// sessions (teardown on an initialization failure) may have nil members.
func (sess *sdkSession) close(log *zap.Logger) {
	sess.closed.Store(true)
	if sess.messagesUnsub != nil {
		sess.messagesUnsub()
	}
	if sess.txsUnsub != nil {
		sess.txsUnsub()
	}
	if sess.sdk != nil {
		if err := sess.sdk.Dispose(); err != nil {
			log.Warn("failed to dispose sdk handle", zap.Error(err))
		}
	}
}

// InitializeSDK constructs the signing SDK handle for the current device:
// it wires the outgoing-message sink, the event handler and the secure
// storage provider, subscribes to the backend message and transaction
// streams, and fetches the initial key status. Collaborator failures are
// not returned; they surface as SDKStatus == SDKStatusInitFailed, with
// everything partially built torn down again.
func (s *Store) InitializeSDK(ctx context.Context) error {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return err
	}

	// One session is built or torn down at a time; overlapping calls queue.
	s.sdkMu.Lock()
	defer s.sdkMu.Unlock()

	// Drop any previous handle before building the new one.
	s.mu.Lock()
	previous := s.session
	s.session = nil
	s.mu.Unlock()
	if previous != nil {
		previous.close(s.logger)
	}

	s.update(func(st *State) {
		st.SDKStatus = SDKStatusInitializing
	})

	session := &sdkSession{}
	fail := func(err error) {
		s.logger.Error("sdk initialization failed",
			zap.String("device_id", deviceID),
			zap.Error(err))
		session.close(s.logger)
		s.update(func(st *State) {
			st.KeysStatus = nil
			st.SDKStatus = SDKStatusInitFailed
		})
	}

	sdk, err := s.newSDK(ctx, ncw.Options{
		Env:           s.sdkEnv,
		DeviceID:      deviceID,
		MessageSink:   &outgoingMessageSink{client: client, deviceID: deviceID},
		EventHandler:  ncw.EventHandlerFunc(s.handleSDKEvent),
		SecureStorage: securestorage.New(deviceID, s.kv, s.passwords),
		Logger:        &sdkLogger{log: s.logger.Named("ncw-sdk")},
	})
	if err != nil {
		fail(err)
		return nil
	}
	session.sdk = sdk

	physicalDeviceID := sdk.PhysicalDeviceID()
	session.messagesUnsub = client.ListenToMessages(deviceID, physicalDeviceID, func(msg string) {
		if session.closed.Load() {
			return
		}
		if err := sdk.HandleIncomingMessage(context.Background(), msg); err != nil {
			s.logger.Warn("failed to handle incoming message",
				zap.String("device_id", deviceID),
				zap.Error(err))
		}
	})
	session.txsUnsub = client.ListenToTxs(deviceID, func(tx backend.Transaction) {
		if session.closed.Load() {
			return
		}
		s.applyTransactionUpdate(tx)
	})

	keys, err := sdk.KeysStatus(ctx)
	if err != nil {
		fail(err)
		return nil
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	s.update(func(st *State) {
		st.KeysStatus = keys
		st.SDKStatus = SDKStatusAvailable
	})
	return nil
}

// DisposeSDK cancels both backend subscriptions and disposes the SDK
// handle. It is an error to call it without a live handle.
func (s *Store) DisposeSDK() error {
	s.sdkMu.Lock()
	defer s.sdkMu.Unlock()

	s.mu.Lock()
	session := s.session
	s.session = nil
	s.mu.Unlock()

	if session == nil {
		return ErrSDKNotInitialized
	}

	session.close(s.logger)
	s.update(func(st *State) {
		st.SDKStatus = SDKStatusNotReady
	})
	return nil
}

// Takeover migrates signing ownership of the wallet's keys to this device.
// It changes no local state; callers should refresh the key status
// afterwards.
func (s *Store) Takeover(ctx context.Context) error {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()

	if session == nil {
		return ErrSDKNotInitialized
	}
	return session.sdk.Takeover(ctx)
}

// handleSDKEvent reacts to SDK events: key descriptor changes are merged
// into the key status map; signature progress is observability only.
func (s *Store) handleSDKEvent(_ context.Context, event ncw.Event) {
	switch e := event.(type) {
	case ncw.KeyDescriptorChangedEvent:
		s.update(func(st *State) {
			if st.KeysStatus == nil {
				st.KeysStatus = make(map[ncw.MPCAlgorithm]ncw.KeyDescriptor)
			}
			st.KeysStatus[e.Descriptor.Algorithm] = e.Descriptor
		})

	case ncw.TransactionSignatureChangedEvent:
		s.logger.Info("transaction signature status changed",
			zap.String("tx_id", e.Signature.TxID),
			zap.String("status", e.Signature.Status))
	}
}

// outgoingMessageSink forwards SDK protocol messages to the backend relay.
type outgoingMessageSink struct {
	client   BackendClient
	deviceID string
}

func (m *outgoingMessageSink) HandleOutgoingMessage(ctx context.Context, message string) error {
	return m.client.SendMessage(ctx, m.deviceID, message)
}

// sdkLogger adapts the zap logger to the SDK's logging surface.
type sdkLogger struct {
	log *zap.Logger
}

func (l *sdkLogger) Debug(msg string) { l.log.Debug(msg) }
func (l *sdkLogger) Info(msg string)  { l.log.Info(msg) }
func (l *sdkLogger) Warn(msg string)  { l.log.Warn(msg) }
func (l *sdkLogger) Error(msg string) { l.log.Error(msg) }
