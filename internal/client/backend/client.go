// Package backend is the client for the demo app server: authentication,
// device assignment, MPC message relay, transactions, Web3 connections and
// account data. All calls are JSON over HTTP; push-style message and
// transaction streams are exposed through cancellable polling listeners.
package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/walletdemo/ncw-core/internal/httpclient"
	"github.com/walletdemo/ncw-core/internal/logger"
)

// Client manages communication with the demo app server.
type Client struct {
	httpClient *httpclient.HTTPClient
	logger     *zap.Logger
}

// NewClient creates a backend client. The token supplier is consulted for a
// bearer token on every request.
func NewClient(baseURL string, tokens httpclient.TokenSupplier) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token supplier is required")
	}

	return &Client{
		httpClient: httpclient.NewHTTPClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTokenSupplier(tokens),
		),
		logger: logger.Log,
	}, nil
}

// Login authenticates against the demo server and returns the user id.
func (c *Client) Login(ctx context.Context) (string, error) {
	resp, err := c.httpClient.Post(ctx, "/api/login", nil)
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := c.httpClient.ProcessJSONResponse(resp, &result); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	return result.ID, nil
}

// AssignDevice binds the device id to a wallet on the backend and returns
// the assigned wallet id.
func (c *Client) AssignDevice(ctx context.Context, deviceID string) (string, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/api/devices/%s/assign", deviceID), nil)
	if err != nil {
		return "", fmt.Errorf("failed to assign device %s: %w", deviceID, err)
	}

	var result struct {
		WalletID string `json:"walletId"`
	}
	if err := c.httpClient.ProcessJSONResponse(resp, &result); err != nil {
		return "", fmt.Errorf("failed to decode assign response: %w", err)
	}

	c.logger.Info("device assigned",
		zap.String("device_id", deviceID),
		zap.String("wallet_id", result.WalletID))
	return result.WalletID, nil
}

// SendMessage relays an outgoing MPC protocol message to the backend.
func (c *Client) SendMessage(ctx context.Context, deviceID, message string) error {
	body := map[string]string{"message": message}
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/api/devices/%s/messages", deviceID), body)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	resp.Body.Close()
	return nil
}

// CreateTransaction asks the backend to create an outgoing transaction for
// the device and returns the created record.
func (c *Client) CreateTransaction(ctx context.Context, deviceID string) (Transaction, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/api/devices/%s/transactions", deviceID), nil)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	var tx Transaction
	if err := c.httpClient.ProcessJSONResponse(resp, &tx); err != nil {
		return Transaction{}, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return tx, nil
}

// CancelTransaction asks the backend to cancel the given transaction.
func (c *Client) CancelTransaction(ctx context.Context, deviceID, txID string) error {
	resp, err := c.httpClient.Post(ctx,
		fmt.Sprintf("/api/devices/%s/transactions/%s/cancel", deviceID, txID), nil)
	if err != nil {
		return fmt.Errorf("failed to cancel transaction %s: %w", txID, err)
	}
	resp.Body.Close()
	return nil
}

// GetWeb3Connections lists the device's confirmed Web3 connections.
func (c *Client) GetWeb3Connections(ctx context.Context, deviceID string) ([]Web3Connection, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/api/devices/%s/web3/connections", deviceID))
	if err != nil {
		return nil, fmt.Errorf("failed to list web3 connections: %w", err)
	}

	var connections []Web3Connection
	if err := c.httpClient.ProcessJSONResponse(resp, &connections); err != nil {
		return nil, fmt.Errorf("failed to decode web3 connections: %w", err)
	}
	return connections, nil
}

// CreateWeb3Connection requests a new pairing from the backend using the
// dapp's pairing URI and returns the proposed connection.
func (c *Client) CreateWeb3Connection(ctx context.Context, deviceID, uri string) (Web3Connection, error) {
	body := map[string]string{"uri": uri}
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/api/devices/%s/web3/connections", deviceID), body)
	if err != nil {
		return Web3Connection{}, fmt.Errorf("failed to create web3 connection: %w", err)
	}

	var connection Web3Connection
	if err := c.httpClient.ProcessJSONResponse(resp, &connection); err != nil {
		return Web3Connection{}, fmt.Errorf("failed to decode web3 connection: %w", err)
	}
	return connection, nil
}

// ApproveWeb3Connection approves a proposed pairing.
func (c *Client) ApproveWeb3Connection(ctx context.Context, deviceID, sessionID string) error {
	resp, err := c.httpClient.Post(ctx,
		fmt.Sprintf("/api/devices/%s/web3/connections/%s/approve", deviceID, sessionID), nil)
	if err != nil {
		return fmt.Errorf("failed to approve web3 connection %s: %w", sessionID, err)
	}
	resp.Body.Close()
	return nil
}

// DenyWeb3Connection denies a proposed pairing.
func (c *Client) DenyWeb3Connection(ctx context.Context, deviceID, sessionID string) error {
	resp, err := c.httpClient.Post(ctx,
		fmt.Sprintf("/api/devices/%s/web3/connections/%s/deny", deviceID, sessionID), nil)
	if err != nil {
		return fmt.Errorf("failed to deny web3 connection %s: %w", sessionID, err)
	}
	resp.Body.Close()
	return nil
}

// RemoveWeb3Connection removes a confirmed connection.
func (c *Client) RemoveWeb3Connection(ctx context.Context, deviceID, sessionID string) error {
	resp, err := c.httpClient.Delete(ctx,
		fmt.Sprintf("/api/devices/%s/web3/connections/%s", deviceID, sessionID))
	if err != nil {
		return fmt.Errorf("failed to remove web3 connection %s: %w", sessionID, err)
	}
	resp.Body.Close()
	return nil
}

// GetAccounts lists the wallet's accounts.
func (c *Client) GetAccounts(ctx context.Context, deviceID string) ([]Account, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/api/devices/%s/accounts", deviceID))
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	var accounts []Account
	if err := c.httpClient.ProcessJSONResponse(resp, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}

// GetAssets lists the assets of one account.
func (c *Client) GetAssets(ctx context.Context, deviceID string, accountID int) ([]Asset, error) {
	resp, err := c.httpClient.Get(ctx,
		fmt.Sprintf("/api/devices/%s/accounts/%d/assets", deviceID, accountID))
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for account %d: %w", accountID, err)
	}

	var assets []Asset
	if err := c.httpClient.ProcessJSONResponse(resp, &assets); err != nil {
		return nil, fmt.Errorf("failed to decode assets: %w", err)
	}
	return assets, nil
}

// GetAddress fetches the deposit address of one asset.
func (c *Client) GetAddress(ctx context.Context, deviceID string, accountID int, assetID string) (AssetAddress, error) {
	resp, err := c.httpClient.Get(ctx,
		fmt.Sprintf("/api/devices/%s/accounts/%d/assets/%s/address", deviceID, accountID, assetID))
	if err != nil {
		return AssetAddress{}, fmt.Errorf("failed to get address for asset %s: %w", assetID, err)
	}

	var address AssetAddress
	if err := c.httpClient.ProcessJSONResponse(resp, &address); err != nil {
		return AssetAddress{}, fmt.Errorf("failed to decode address: %w", err)
	}
	return address, nil
}

// GetBalance fetches the current balance of one asset.
func (c *Client) GetBalance(ctx context.Context, deviceID string, accountID int, assetID string) (AssetBalance, error) {
	resp, err := c.httpClient.Get(ctx,
		fmt.Sprintf("/api/devices/%s/accounts/%d/assets/%s/balance", deviceID, accountID, assetID))
	if err != nil {
		return AssetBalance{}, fmt.Errorf("failed to get balance for asset %s: %w", assetID, err)
	}

	var balance AssetBalance
	if err := c.httpClient.ProcessJSONResponse(resp, &balance); err != nil {
		return AssetBalance{}, fmt.Errorf("failed to decode balance: %w", err)
	}
	return balance, nil
}

// AddAsset enables an asset in an account. The new asset becomes visible on
// the next account refresh.
func (c *Client) AddAsset(ctx context.Context, deviceID string, accountID int, assetID string) error {
	resp, err := c.httpClient.Post(ctx,
		fmt.Sprintf("/api/devices/%s/accounts/%d/assets/%s", deviceID, accountID, assetID), nil)
	if err != nil {
		return fmt.Errorf("failed to add asset %s: %w", assetID, err)
	}
	resp.Body.Close()
	return nil
}
