package backend

// TransactionDetails carries the optional transfer details attached to a
// transaction by the backend.
type TransactionDetails struct {
	AssetID            string `json:"assetId,omitempty"`
	Amount             string `json:"amount,omitempty"`
	DestinationAddress string `json:"destinationAddress,omitempty"`
	Operation          string `json:"operation,omitempty"`
}

// Transaction is one transaction record tracked for the device.
// LastUpdated and CreatedAt are unix milliseconds.
type Transaction struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	CreatedAt   int64               `json:"createdAt,omitempty"`
	LastUpdated int64               `json:"lastUpdated,omitempty"`
	Details     *TransactionDetails `json:"details,omitempty"`
}

// Transaction statuses the client inspects locally. The backend owns the
// full set; everything else is passed through opaquely.
const (
	TxStatusCancelling = "CANCELLING"
	TxStatusCompleted  = "COMPLETED"
)

// Web3ConnectionMetadata describes the dapp behind a Web3 connection.
type Web3ConnectionMetadata struct {
	AppName string `json:"appName"`
	AppURL  string `json:"appUrl"`
	AppIcon string `json:"appIcon,omitempty"`
}

// Web3Connection is one third-party session, proposed or confirmed.
type Web3Connection struct {
	ID              string                 `json:"id"`
	SessionMetadata Web3ConnectionMetadata `json:"sessionMetadata"`
	CreationDate    string                 `json:"creationDate,omitempty"`
}

// Account is one wallet account as reported by the backend.
type Account struct {
	AccountID int    `json:"accountId"`
	WalletID  string `json:"walletId,omitempty"`
}

// Asset describes an asset available in an account.
type Asset struct {
	ID        string `json:"id"`
	Symbol    string `json:"symbol,omitempty"`
	Name      string `json:"name,omitempty"`
	Decimals  int    `json:"decimals,omitempty"`
	TestAsset bool   `json:"testAsset,omitempty"`
}

// AssetBalance is the backend-reported balance of one asset.
type AssetBalance struct {
	ID        string `json:"id"`
	Total     string `json:"total"`
	Available string `json:"available,omitempty"`
}

// AssetAddress is the deposit address of one asset. Addresses never change
// for a given (account, asset) pair and are cached client-side.
type AssetAddress struct {
	AccountID int    `json:"accountId"`
	Address   string `json:"address"`
	Tag       string `json:"tag,omitempty"`
}

// message is one queued MPC protocol message awaiting delivery to the SDK.
type message struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
