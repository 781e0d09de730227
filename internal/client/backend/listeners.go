package backend

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/walletdemo/ncw-core/internal/httpclient"
)

// The server holds poll requests open up to this many seconds before
// returning an empty result.
const pollTimeoutSeconds = 10

// ListenToMessages starts delivering MPC protocol messages queued for
// (deviceID, physicalDeviceID) to onMessage, in arrival order. Each message
// is acknowledged after the handler returns. The returned unsubscribe
// function stops the listener and is safe to call more than once.
func (c *Client) ListenToMessages(deviceID, physicalDeviceID string, onMessage func(message string)) func() {
	ctx, cancel := context.WithCancel(context.Background())

	go c.pollMessages(ctx, deviceID, physicalDeviceID, onMessage)

	var once sync.Once
	return func() {
		once.Do(cancel)
	}
}

// ListenToTxs starts delivering transaction updates for the device to onTx.
// Updates are incremental: only transactions changed since the previous
// poll are delivered again. The returned unsubscribe function stops the
// listener and is safe to call more than once.
func (c *Client) ListenToTxs(deviceID string, onTx func(tx Transaction)) func() {
	ctx, cancel := context.WithCancel(context.Background())

	go c.pollTxs(ctx, deviceID, onTx)

	var once sync.Once
	return func() {
		once.Do(cancel)
	}
}

func (c *Client) pollMessages(ctx context.Context, deviceID, physicalDeviceID string, onMessage func(string)) {
	bo := newPollBackoff()

	for {
		if ctx.Err() != nil {
			return
		}

		messages, err := c.fetchMessages(ctx, deviceID, physicalDeviceID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("message poll failed",
				zap.String("device_id", deviceID),
				zap.Error(err))
			if !sleepContext(ctx, bo.NextBackOff()) {
				return
			}
			continue
		}
		bo.Reset()

		for _, msg := range messages {
			if ctx.Err() != nil {
				return
			}
			onMessage(msg.Message)
			if err := c.ackMessage(ctx, deviceID, msg.ID); err != nil && ctx.Err() == nil {
				c.logger.Warn("failed to ack message",
					zap.String("device_id", deviceID),
					zap.String("message_id", msg.ID),
					zap.Error(err))
			}
		}
	}
}

func (c *Client) pollTxs(ctx context.Context, deviceID string, onTx func(Transaction)) {
	bo := newPollBackoff()
	var cursor int64

	for {
		if ctx.Err() != nil {
			return
		}

		txs, err := c.fetchTransactions(ctx, deviceID, cursor)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("transaction poll failed",
				zap.String("device_id", deviceID),
				zap.Error(err))
			if !sleepContext(ctx, bo.NextBackOff()) {
				return
			}
			continue
		}
		bo.Reset()

		for _, tx := range txs {
			if ctx.Err() != nil {
				return
			}
			if tx.LastUpdated > cursor {
				cursor = tx.LastUpdated
			}
			onTx(tx)
		}
	}
}

func (c *Client) fetchMessages(ctx context.Context, deviceID, physicalDeviceID string) ([]message, error) {
	resp, err := c.httpClient.Get(ctx,
		fmt.Sprintf("/api/devices/%s/messages", deviceID),
		httpclient.WithQueryParam("physicalDeviceId", physicalDeviceID),
		httpclient.WithQueryParam("timeout", strconv.Itoa(pollTimeoutSeconds)))
	if err != nil {
		return nil, err
	}

	var messages []message
	if err := c.httpClient.ProcessJSONResponse(resp, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

func (c *Client) ackMessage(ctx context.Context, deviceID, messageID string) error {
	resp, err := c.httpClient.Delete(ctx,
		fmt.Sprintf("/api/devices/%s/messages/%s", deviceID, messageID))
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *Client) fetchTransactions(ctx context.Context, deviceID string, after int64) ([]Transaction, error) {
	resp, err := c.httpClient.Get(ctx,
		fmt.Sprintf("/api/devices/%s/transactions", deviceID),
		httpclient.WithQueryParam("poll", "true"),
		httpclient.WithQueryParam("details", "true"),
		httpclient.WithQueryParam("startDate", strconv.FormatInt(after, 10)))
	if err != nil {
		return nil, err
	}

	var txs []Transaction
	if err := c.httpClient.ProcessJSONResponse(resp, &txs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txs, nil
}

func newPollBackoff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0 // listeners retry until unsubscribed
	return bo
}

// sleepContext sleeps for d, returning false if ctx was cancelled first.
func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
