package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/luna/internal/api"
	"github.com/terraincognita07/luna/internal/chatstore"
	"github.com/terraincognita07/luna/internal/cli"
	"github.com/terraincognita07/luna/internal/config"
	"github.com/terraincognita07/luna/internal/db"
	"github.com/terraincognita07/luna/internal/generation"
	"github.com/terraincognita07/luna/internal/logger"
)

func main() {
	if len(os.Args) > 1 {
		if err := runCommand(os.Args[1:]); err != nil {
			log.Fatalf("%s failed: %v", os.Args[1], err)
		}
		return
	}

	if err := runServer(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runCommand(args []string) error {
	switch args[0] {
	case "reset-password":
		if len(args) != 2 {
			return errors.New("usage: luna reset-password <email>")
		}
		config.LoadEnvFile()
		return cli.RunResetPasswordCommand(cli.ResetOptions{
			DBPath: config.ResolveDBPath(),
			Email:  args[1],
			Log:    logger.Nop(),
		})
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	time.Local = cfg.Location

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer appLog.Sync()

	database, err := db.OpenSQLite(cfg.DBPath, appLog)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()

	provider, err := generation.New(startupCtx, cfg, appLog)
	if err != nil {
		return fmt.Errorf("generation init failed: %w", err)
	}
	defer provider.Close()

	sessions, err := openChatStore(startupCtx, cfg, appLog)
	if err != nil {
		return fmt.Errorf("chat store init failed: %w", err)
	}
	defer sessions.Close()

	handler, err := api.NewHandler(api.Dependencies{
		Database:     database,
		SecretKey:    cfg.SecretKey,
		Location:     cfg.Location,
		CookieSecure: cfg.CookieSecure,
		Generator:    provider,
		ChatStore:    sessions,
		Log:          appLog,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Luna",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.CookieSecure)))
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLog.Error("server shutdown failed", "error", err.Error())
		}
	}()

	appLog.Info("luna listening",
		"port", cfg.Port,
		"db", cfg.DBPath,
		"tz", cfg.Location.String(),
		"generation", provider.Name(),
	)
	return app.Listen(":" + strconv.Itoa(cfg.Port))
}

func openChatStore(ctx context.Context, cfg config.Config, appLog *logger.Logger) (chatstore.Store, error) {
	if cfg.RedisURL == "" {
		return chatstore.NewMemoryStore(cfg.ChatSessionTTL), nil
	}
	return chatstore.NewRedisStore(ctx, cfg.RedisURL, cfg.ChatSessionTTL, appLog)
}

// csrfMiddlewareConfig protects cookie-authenticated browser requests. The
// token travels in the X-CSRF-Token header; bearer-token clients are exempt.
func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "header:" + csrfHeaderName,
		CookieName:     "luna_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		Expiration:     2 * time.Hour,
		Next:           hasBearerToken,
	}
}

const csrfHeaderName = "X-CSRF-Token"

func hasBearerToken(c *fiber.Ctx) bool {
	scheme, token, ok := strings.Cut(strings.TrimSpace(c.Get(fiber.HeaderAuthorization)), " ")
	return ok && strings.EqualFold(scheme, "Bearer") && strings.TrimSpace(token) != ""
}
