// Command demoapp runs the wallet demo client against a demo app server:
// it authenticates, binds the device to a wallet, brings up the signing SDK
// and then follows transaction and connection updates until interrupted.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/walletdemo/ncw-core/internal/client/backend"
	"github.com/walletdemo/ncw-core/internal/config"
	"github.com/walletdemo/ncw-core/internal/httpclient"
	"github.com/walletdemo/ncw-core/internal/localstore"
	"github.com/walletdemo/ncw-core/internal/logger"
	"github.com/walletdemo/ncw-core/internal/ncw/ncwsim"
	"github.com/walletdemo/ncw-core/internal/securestorage"
	"github.com/walletdemo/ncw-core/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	cfg := config.Load()
	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	token := os.Getenv("DEMO_USER_TOKEN")
	if token == "" {
		logger.Log.Fatal("DEMO_USER_TOKEN environment variable is required")
	}

	kv, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		logger.Log.Fatal("failed to open local store", zap.Error(err))
	}
	defer kv.Close()

	app, err := store.New(store.Config{
		Logger:     logger.Log,
		LocalStore: kv,
		NewBackendClient: func(tokens httpclient.TokenSupplier) (store.BackendClient, error) {
			return backend.NewClient(cfg.BackendBaseURL, tokens)
		},
		NewSDK: ncwsim.New,
		Passwords: securestorage.PasswordSupplierFunc(func(context.Context) (string, error) {
			return os.Getenv("SECURE_STORAGE_PASSWORD"), nil
		}),
		SDKEnv: cfg.SDKEnv,
	})
	if err != nil {
		logger.Log.Fatal("failed to create app store", zap.Error(err))
	}

	app.Subscribe(logStateChanges())

	tokens := func(context.Context) (string, error) { return token, nil }
	if err := app.Initialize(tokens); err != nil {
		logger.Log.Fatal("failed to initialize app store", zap.Error(err))
	}
	defer app.Dispose()

	logger.Log.Info("demo app started",
		zap.String("backend", cfg.BackendBaseURL),
		zap.String("device_id", app.State().DeviceID))

	if cfg.AutomateInitialization {
		runStartupFlow(app)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Log.Info("shutting down")
}

// runStartupFlow walks the happy path: login, device assignment, SDK bring-up
// and an initial account refresh. Each step's outcome lands in the state, so
// failures are logged by the subscriber rather than aborting the app.
func runStartupFlow(app *store.Store) {
	ctx := context.Background()

	if err := app.Login(ctx); err != nil {
		logger.Log.Error("login could not start", zap.Error(err))
		return
	}
	if app.State().LoginStatus != store.StatusSuccess {
		return
	}

	if err := app.AssignCurrentDevice(ctx); err != nil {
		logger.Log.Error("device assignment could not start", zap.Error(err))
		return
	}
	if app.State().AssignDeviceStatus != store.StatusSuccess {
		return
	}

	if err := app.InitializeSDK(ctx); err != nil {
		logger.Log.Error("sdk initialization could not start", zap.Error(err))
		return
	}
	if app.State().SDKStatus != store.SDKStatusAvailable {
		return
	}

	if err := app.RefreshAccounts(ctx); err != nil {
		logger.Log.Error("account refresh failed", zap.Error(err))
	}
}

// logStateChanges reports interesting state transitions, skipping snapshots
// where nothing it watches has changed.
func logStateChanges() store.Subscriber {
	var mu sync.Mutex
	var last store.State
	return func(st store.State) {
		mu.Lock()
		defer mu.Unlock()
		if st.LoginStatus != last.LoginStatus {
			logger.Log.Info("login status changed", zap.String("status", string(st.LoginStatus)))
		}
		if st.AssignDeviceStatus != last.AssignDeviceStatus {
			logger.Log.Info("device assignment status changed",
				zap.String("status", string(st.AssignDeviceStatus)),
				zap.String("wallet_id", st.WalletID))
		}
		if st.SDKStatus != last.SDKStatus {
			logger.Log.Info("sdk status changed", zap.String("status", string(st.SDKStatus)))
		}
		if len(st.Transactions) != len(last.Transactions) {
			logger.Log.Info("transaction count changed", zap.Int("count", len(st.Transactions)))
		}
		last = st
	}
}
