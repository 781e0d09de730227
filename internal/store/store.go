// Package store holds all client-visible application state for the wallet
// demo: identity, device and wallet binding, SDK readiness, transactions,
// Web3 connections and the account/asset/balance table. Actions validate
// their preconditions, call the backend client or the signing SDK, and merge
// results back into the state; subscribers are notified after every
// mutation.
package store

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/walletdemo/ncw-core/internal/client/backend"
	"github.com/walletdemo/ncw-core/internal/device"
	"github.com/walletdemo/ncw-core/internal/httpclient"
	"github.com/walletdemo/ncw-core/internal/localstore"
	"github.com/walletdemo/ncw-core/internal/logger"
	"github.com/walletdemo/ncw-core/internal/ncw"
	"github.com/walletdemo/ncw-core/internal/securestorage"
)

// Precondition errors. These indicate programmer errors (calling an action
// before its dependencies exist), not recoverable runtime conditions.
var (
	ErrNotInitialized      = errors.New("store is not initialized")
	ErrSDKNotInitialized   = errors.New("sdk is not initialized")
	ErrNoPendingConnection = errors.New("no pending web3 connection")
)

const passphraseKey = "backup-passphrase"

// AccountAsset is one asset row of the account table. Balance and Address
// are nil until fetched; the address, once known, never changes and is
// reused across refreshes.
type AccountAsset struct {
	Asset   backend.Asset
	Balance *backend.AssetBalance
	Address *backend.AssetAddress
}

// State is an immutable snapshot of the application state. Subscribers and
// callers receive copies; mutating a snapshot has no effect on the store.
type State struct {
	Initialized bool

	UserID     string
	DeviceID   string
	WalletID   string
	Passphrase string

	LoginStatus        Status
	AssignDeviceStatus Status

	SDKStatus  SDKStatus
	KeysStatus map[ncw.MPCAlgorithm]ncw.KeyDescriptor

	Transactions          []backend.Transaction
	Web3Connections       []backend.Web3Connection
	PendingWeb3Connection *backend.Web3Connection

	// Accounts is indexed by account id; each row lists the account's
	// assets in backend order.
	Accounts [][]AccountAsset
}

// Subscriber receives a state snapshot after every mutation.
type Subscriber func(State)

// Config carries the store's collaborators.
type Config struct {
	Logger     *zap.Logger
	LocalStore *localstore.Store
	// NewBackendClient constructs the backend client at Initialize time.
	NewBackendClient ClientFactory
	// NewSDK constructs the signing SDK handle at InitializeSDK time.
	NewSDK ncw.Factory
	// Passwords supplies the secure-storage password on demand.
	Passwords securestorage.PasswordSupplier
	// SDKEnv selects the SDK environment.
	SDKEnv string
}

// Store is the application state store.
type Store struct {
	logger    *zap.Logger
	kv        *localstore.Store
	newClient ClientFactory
	newSDK    ncw.Factory
	passwords securestorage.PasswordSupplier
	sdkEnv    string

	mu          sync.Mutex
	state       State
	client      BackendClient
	session     *sdkSession
	subscribers []Subscriber

	// refreshMu serializes account-table refreshes so overlapping calls
	// queue instead of overwriting each other's result.
	refreshMu sync.Mutex

	// sdkMu serializes SDK session construction and teardown; without it
	// two overlapping InitializeSDK calls would both drop the same
	// previous session and the losing session would never be closed.
	sdkMu sync.Mutex
}

// New creates a Store, loading the persisted device id and backup
// passphrase. The backend client is not constructed until Initialize.
func New(cfg Config) (*Store, error) {
	if cfg.LocalStore == nil {
		return nil, errors.New("local store is required")
	}
	if cfg.NewBackendClient == nil {
		return nil, errors.New("backend client factory is required")
	}
	if cfg.NewSDK == nil {
		return nil, errors.New("sdk factory is required")
	}
	if cfg.Passwords == nil {
		return nil, errors.New("password supplier is required")
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Log
	}

	deviceID, err := device.GetOrCreateID(cfg.LocalStore)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load device id")
	}

	storedPassphrase, err := cfg.LocalStore.Get(passphraseKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load backup passphrase")
	}

	return &Store{
		logger:    log,
		kv:        cfg.LocalStore,
		newClient: cfg.NewBackendClient,
		newSDK:    cfg.NewSDK,
		passwords: cfg.Passwords,
		sdkEnv:    cfg.SDKEnv,
		state: State{
			DeviceID:           deviceID,
			Passphrase:         string(storedPassphrase),
			LoginStatus:        StatusNotStarted,
			AssignDeviceStatus: StatusNotStarted,
			SDKStatus:          SDKStatusNotReady,
		},
	}, nil
}

// Initialize constructs the backend client using the supplied bearer-token
// supplier and marks the store initialized. On failure the store stays
// (or becomes) uninitialized.
func (s *Store) Initialize(tokens httpclient.TokenSupplier) error {
	client, err := s.newClient(tokens)
	if err != nil {
		s.logger.Error("failed to initialize backend client", zap.Error(err))
		s.update(func(st *State) { st.Initialized = false })
		return errors.Wrap(err, "failed to initialize backend client")
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()
	s.update(func(st *State) { st.Initialized = true })
	return nil
}

// Dispose releases the backend client and cancels any open subscriptions,
// marking the store uninitialized. Disposing an already-disposed store is a
// no-op.
func (s *Store) Dispose() {
	s.sdkMu.Lock()
	defer s.sdkMu.Unlock()

	s.mu.Lock()
	if s.client == nil {
		s.mu.Unlock()
		return
	}
	s.client = nil
	session := s.session
	s.session = nil
	s.mu.Unlock()

	if session != nil {
		session.close(s.logger)
	}

	s.update(func(st *State) {
		st.Initialized = false
		if st.SDKStatus != SDKStatusNotReady {
			st.SDKStatus = SDKStatusNotReady
		}
	})
}

// Subscribe registers a subscriber notified with a snapshot after every
// state mutation.
func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// update applies fn to the state under the lock, then notifies subscribers
// with the resulting snapshot (outside the lock).
func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state.clone()
	subscribers := make([]Subscriber, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subscribers {
		sub(snapshot)
	}
}

// requireClient returns the backend client and current device id, or
// ErrNotInitialized before Initialize / after Dispose.
func (s *Store) requireClient() (BackendClient, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil, "", ErrNotInitialized
	}
	return s.client, s.state.DeviceID, nil
}

func (st *State) clone() State {
	out := *st

	if st.KeysStatus != nil {
		out.KeysStatus = make(map[ncw.MPCAlgorithm]ncw.KeyDescriptor, len(st.KeysStatus))
		for algorithm, descriptor := range st.KeysStatus {
			out.KeysStatus[algorithm] = descriptor
		}
	}

	if st.Transactions != nil {
		out.Transactions = make([]backend.Transaction, len(st.Transactions))
		copy(out.Transactions, st.Transactions)
	}

	if st.Web3Connections != nil {
		out.Web3Connections = make([]backend.Web3Connection, len(st.Web3Connections))
		copy(out.Web3Connections, st.Web3Connections)
	}

	if st.PendingWeb3Connection != nil {
		pending := *st.PendingWeb3Connection
		out.PendingWeb3Connection = &pending
	}

	if st.Accounts != nil {
		out.Accounts = make([][]AccountAsset, len(st.Accounts))
		for i, row := range st.Accounts {
			out.Accounts[i] = make([]AccountAsset, len(row))
			for j, entry := range row {
				if entry.Balance != nil {
					balance := *entry.Balance
					entry.Balance = &balance
				}
				if entry.Address != nil {
					address := *entry.Address
					entry.Address = &address
				}
				out.Accounts[i][j] = entry
			}
		}
	}

	return out
}
