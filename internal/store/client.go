package store

import (
	"context"

	"github.com/walletdemo/ncw-core/internal/client/backend"
	"github.com/walletdemo/ncw-core/internal/httpclient"
)

//go:generate mockgen -source=client.go -destination=../mocks/backend_client_mock.go -package=mocks

// BackendClient is the demo-server contract the store depends on. It is
// implemented by the backend package; tests substitute a mock.
type BackendClient interface {
	Login(ctx context.Context) (string, error)
	AssignDevice(ctx context.Context, deviceID string) (string, error)
	SendMessage(ctx context.Context, deviceID, message string) error
	ListenToMessages(deviceID, physicalDeviceID string, onMessage func(message string)) (unsubscribe func())
	ListenToTxs(deviceID string, onTx func(tx backend.Transaction)) (unsubscribe func())
	CreateTransaction(ctx context.Context, deviceID string) (backend.Transaction, error)
	CancelTransaction(ctx context.Context, deviceID, txID string) error
	GetWeb3Connections(ctx context.Context, deviceID string) ([]backend.Web3Connection, error)
	CreateWeb3Connection(ctx context.Context, deviceID, uri string) (backend.Web3Connection, error)
	ApproveWeb3Connection(ctx context.Context, deviceID, sessionID string) error
	DenyWeb3Connection(ctx context.Context, deviceID, sessionID string) error
	RemoveWeb3Connection(ctx context.Context, deviceID, sessionID string) error
	GetAccounts(ctx context.Context, deviceID string) ([]backend.Account, error)
	GetAssets(ctx context.Context, deviceID string, accountID int) ([]backend.Asset, error)
	GetAddress(ctx context.Context, deviceID string, accountID int, assetID string) (backend.AssetAddress, error)
	GetBalance(ctx context.Context, deviceID string, accountID int, assetID string) (backend.AssetBalance, error)
	AddAsset(ctx context.Context, deviceID string, accountID int, assetID string) error
}

// ClientFactory constructs a backend client from a bearer-token supplier.
// It is injected so tests can substitute a mock client.
type ClientFactory func(tokens httpclient.TokenSupplier) (BackendClient, error)
