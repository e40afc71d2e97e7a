package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/andy/invoicegenius/internal/config"
	"github.com/andy/invoicegenius/internal/crypto"
	"github.com/andy/invoicegenius/internal/db"
	"github.com/andy/invoicegenius/internal/genai"
	"github.com/andy/invoicegenius/internal/money"
	"github.com/andy/invoicegenius/internal/service"
	"github.com/andy/invoicegenius/internal/store"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Log    *zap.SugaredLogger
	DB     *db.DB

	States  *store.StateStore
	Editor  *service.Editor
	TextGen service.TextGenerator

	logger *zap.Logger
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Getting encryption key from keyring
// 3. Opening storage
// 4. Running migrations
// 5. Loading persisted state into the editor
// 6. Wiring the text generator
func New(ctx context.Context) (*App, error) {
	// Load config from default path
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	// Ensure all necessary directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	// Logs go to a file, never the terminal; the TUI owns the screen
	logger, err := newFileLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	log := logger.Sugar()

	// Get keyring for secure storage of the encryption key
	keyring := crypto.NewKeyring()

	password, err := keyring.GetKey()
	if err != nil {
		// First run: generate a key and try to stash it in the keyring
		password, err = crypto.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("failed to generate encryption key: %w", err)
		}

		if err := keyring.SetKey(password); err != nil {
			// No keyring available, fall back to a user-chosen passphrase
			log.Warnw("keyring unavailable, prompting for passphrase", "error", err)
			password, err = promptForPassword()
			if err != nil {
				return nil, fmt.Errorf("failed to set passphrase: %w", err)
			}
		}
	}

	// Open the storage with encryption
	database, err := db.Open(cfg.Storage.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	// Run migrations to ensure schema is up to date
	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	states := store.NewStateStore(database, log)
	editor := service.NewEditor(states.Load(ctx), states)

	return &App{
		Config:  cfg,
		Log:     log,
		DB:      database,
		States:  states,
		Editor:  editor,
		TextGen: newTextGenerator(cfg, log),
		logger:  logger,
	}, nil
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Formatter returns a currency formatter for the current invoice
// currency and the configured locale.
func (a *App) Formatter() money.Formatter {
	return money.NewFormatter(a.Editor.State().Invoice.Currency, a.Config.Format.Locale)
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}

func newFileLogger(cfg *config.Config) (*zap.Logger, error) {
	logPath := filepath.Join(filepath.Dir(cfg.Storage.Path), "invoicegenius.log")

	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{logPath}
	zcfg.ErrorOutputPaths = []string{logPath}

	return zcfg.Build()
}

// newTextGenerator wires the AI collaborator. Without a GEMINI_API_KEY
// the app still works; suggestions just return deterministic fallbacks.
func newTextGenerator(cfg *config.Config, log *zap.SugaredLogger) service.TextGenerator {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return genai.Unconfigured{}
	}

	gcfg := genai.DefaultConfig()
	gcfg.APIKey = apiKey
	if cfg.AI.Model != "" {
		gcfg.ModelID = cfg.AI.Model
	}
	if cfg.AI.TimeoutSeconds > 0 {
		gcfg.Timeout = time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	}

	return genai.NewClient(gcfg, log)
}

// promptForPassword prompts user for a storage passphrase (first run,
// keyring unavailable)
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your invoice data will be encrypted with a passphrase.")
	fmt.Println()
	fmt.Print("Enter a passphrase for storage encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("passphrase cannot be empty")
	}

	// Confirm password
	fmt.Print("Confirm passphrase: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after confirmation
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	// Check if passwords match
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passphrases do not match")
	}

	fmt.Println()
	fmt.Println("✓ Storage encryption configured successfully")
	fmt.Println()

	return string(password), nil
}
