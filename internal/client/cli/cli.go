package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/iudanet/socialnet/internal/client/api"
	"github.com/iudanet/socialnet/internal/client/auth"
	"github.com/iudanet/socialnet/internal/client/iocli"
	"github.com/iudanet/socialnet/internal/client/session"
	"github.com/iudanet/socialnet/internal/client/storage/boltdb"
)

// PasswordEnv - переменная окружения с паролем (высший приоритет)
const PasswordEnv = "SOCIALNET_PASSWORD"

const (
	defaultServer      = "http://localhost:8080"
	defaultDBPath      = "socialnet-client.db"
	defaultTimeoutFlag = 30 * time.Second
)

// Passwords - источники пароля, заданные флагами
type Passwords struct {
	FromFile string
	FromArgs string
}

type options struct {
	passwords Passwords
	server    string
	dbPath    string
	timeout   time.Duration
	verbose   bool
}

// Cli связывает команды с сервисом авторизации.
// Хранилище и клиент открываются при первой команде, которой они нужны.
type Cli struct {
	io          iocli.IO
	logger      *slog.Logger
	storage     *boltdb.Storage
	authService *auth.Service
	version     string
	opts        options
}

// New создает CLI
func New(io iocli.IO, version string) *Cli {
	return &Cli{
		io:      io,
		version: version,
	}
}

// Execute разбирает аргументы и выполняет команду
func (c *Cli) Execute(ctx context.Context, args []string) error {
	defer c.close()

	root := c.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// open открывает BoltDB и собирает клиент поверх сохраненной сессии
func (c *Cli) open(ctx context.Context) error {
	if c.authService != nil {
		return nil
	}

	level := slog.LevelWarn
	if c.opts.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := boltdb.New(ctx, c.opts.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.storage = store

	state, err := session.NewPersistent(ctx, store, c.logger)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	jar, err := api.NewPersistentJar(ctx, store, c.logger)
	if err != nil {
		return err
	}

	apiClient, err := api.NewClient(c.opts.server, state, c.logger,
		api.WithJar(jar),
		api.WithTimeout(c.opts.timeout),
	)
	if err != nil {
		return err
	}

	c.authService = auth.NewService(apiClient, state, c.logger)
	return nil
}

func (c *Cli) close() {
	if c.storage == nil {
		return
	}
	if err := c.storage.Close(); err != nil {
		c.logger.Error("Failed to close database", slog.Any("error", err))
	}
	c.storage = nil
}

// requireSession восстанавливает сессию или сообщает, что нужен вход
func (c *Cli) requireSession(ctx context.Context) error {
	ok, err := c.authService.Restore(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if !ok {
		return notLoggedIn()
	}
	return nil
}

func notLoggedIn() error {
	return fmt.Errorf("%w. Please run 'socialnet login' first", auth.ErrNotLoggedIn)
}

// explain переводит ошибки сервиса в сообщения для пользователя
func explain(err error) error {
	switch {
	case errors.Is(err, auth.ErrNotLoggedIn):
		return notLoggedIn()
	case api.HasStatus(err, http.StatusTooManyRequests):
		return fmt.Errorf("too many attempts, try again later: %w", err)
	default:
		return err
	}
}

// getPassword retrieves password from various sources with priority:
// 1. Environment variable SOCIALNET_PASSWORD
// 2. File specified in --password-file
// 3. Command-line parameter --password
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword(prompt string, confirm bool) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if c.opts.passwords.FromFile != "" {
		content, err := os.ReadFile(c.opts.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: CLI parameter
	if c.opts.passwords.FromArgs != "" {
		return c.opts.passwords.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	if confirm {
		again, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return "", fmt.Errorf("failed to read confirmation: %w", err)
		}
		if again != password {
			return "", fmt.Errorf("passwords do not match")
		}
	}

	return password, nil
}

// valueOrPrompt возвращает значение флага или спрашивает его у пользователя
func (c *Cli) valueOrPrompt(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}
