package ncw

import "context"

// Event is the closed set of asynchronous notifications emitted by the SDK.
// The marker method keeps the set sealed so handlers can type-switch
// exhaustively.
type Event interface {
	isEvent()
}

// KeyDescriptorChangedEvent reports that key generation progressed for one
// algorithm.
type KeyDescriptorChangedEvent struct {
	Descriptor KeyDescriptor
}

func (KeyDescriptorChangedEvent) isEvent() {}

// TransactionSignature describes the signing progress of one transaction.
type TransactionSignature struct {
	TxID   string `json:"txId"`
	Status string `json:"transactionSignatureStatus"`
}

// TransactionSignatureChangedEvent reports signing progress on a transaction.
type TransactionSignatureChangedEvent struct {
	Signature TransactionSignature
}

func (TransactionSignatureChangedEvent) isEvent() {}

// EventHandler reacts to SDK events.
type EventHandler interface {
	HandleEvent(ctx context.Context, event Event)
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event Event)

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event Event) {
	f(ctx, event)
}
