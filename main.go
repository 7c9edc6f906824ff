package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/restaurant-service/config"
	"github.com/Eursukkul/restaurant-service/internal/auth"
	"github.com/Eursukkul/restaurant-service/internal/consumer"
	"github.com/Eursukkul/restaurant-service/internal/handler"
	"github.com/Eursukkul/restaurant-service/internal/jsonutil"
	"github.com/Eursukkul/restaurant-service/internal/logging"
	"github.com/Eursukkul/restaurant-service/internal/middleware"
	"github.com/Eursukkul/restaurant-service/internal/repository"
	"github.com/Eursukkul/restaurant-service/internal/service"
	"github.com/Eursukkul/restaurant-service/internal/validation"
	"github.com/Eursukkul/restaurant-service/pkg/database"
	"github.com/Eursukkul/restaurant-service/pkg/rabbitmq"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(os.Stdout, logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}))

	cmd, args := "serve", os.Args[1:]
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, cmd, args); err != nil {
		slog.Error("command failed", slog.String("command", cmd), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, cmd string, args []string) error {
	db, closeDB, err := database.NewPostgresDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	switch cmd {
	case "serve":
		if err := database.Migrate(db); err != nil {
			return err
		}
		return serve(ctx, cfg, db)
	case "migrate":
		return migrate(db)
	case "seed":
		return seedDB(ctx, db)
	case "createuser":
		return createUser(ctx, db, cfg, args)
	default:
		return fmt.Errorf("unknown command %q (want serve, migrate, seed or createuser)", cmd)
	}
}

func serve(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Messaging is optional
	var publisher service.Publisher
	var mqConsumer *rabbitmq.Consumer
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			return fmt.Errorf("connect publisher: %w", err)
		}
		defer pub.Close()
		publisher = pub

		mqConsumer, err = rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			return fmt.Errorf("connect consumer: %w", err)
		}
	} else {
		slog.Info("RABBITMQ_URL not set, messaging disabled")
	}

	// Services
	menuSvc := service.NewMenuService(menuRepo, publisher)
	bookingSvc := service.NewBookingService(bookingRepo)
	authSvc := service.NewAuthService(userRepo, auth.NewTokenManager(cfg.Auth))

	var consumerDone <-chan struct{}
	if mqConsumer != nil {
		msgs, err := mqConsumer.Consume()
		if err != nil {
			mqConsumer.Close()
			return fmt.Errorf("start consuming: %w", err)
		}
		consumerDone = consumer.NewMenuConsumer(menuSvc).Start(ctx, msgs)
	}

	e := newServer(menuSvc, bookingSvc, authSvc, cfg.PageSize)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("restaurant service starting", slog.String("port", cfg.ServerPort))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown", slog.Any("error", err))
	}

	if mqConsumer != nil {
		mqConsumer.Close()
		select {
		case <-consumerDone:
		case <-shutdownCtx.Done():
		}
	}
	return nil
}

func newServer(menuSvc service.MenuService, bookingSvc service.BookingService, authSvc service.AuthService, pageSize int) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = jsonutil.Serializer{}
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Pre(echoMw.AddTrailingSlash())
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(middleware.Authenticate(authSvc))

	handler.RegisterRootRoutes(e)
	handler.NewAuthHandler(authSvc).RegisterRoutes(e)
	handler.NewMenuHandler(menuSvc, pageSize).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc, pageSize).RegisterRoutes(e)

	return e
}
