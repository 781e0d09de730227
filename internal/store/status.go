package store

// Status tracks one asynchronous action through its lifecycle. Transitions
// are not_started -> started -> success|failed; a retry re-enters started
// from either terminal state.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusStarted    Status = "started"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// SDKStatus describes the readiness of the signing SDK handle.
type SDKStatus string

const (
	SDKStatusNotReady     SDKStatus = "sdk_not_ready"
	SDKStatusInitializing SDKStatus = "initializing_sdk"
	SDKStatusAvailable    SDKStatus = "sdk_available"
	SDKStatusInitFailed   SDKStatus = "sdk_initialization_failed"
)
