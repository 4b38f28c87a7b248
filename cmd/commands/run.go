package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"celebra"
	"celebra/config"
	"celebra/internal/application/usecase"
	"celebra/internal/infrastructure/broker"
	"celebra/internal/infrastructure/database"
	"celebra/internal/infrastructure/minio"
	"celebra/internal/presentation"
	"celebra/internal/presentation/handler"
	"celebra/internal/scheduler"
	"celebra/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running celebra", "version", celebra.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	wishStore := database.NewWishStore(db)
	invitationStore := database.NewInvitationStore(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	minIORemover := minio.NewRemover(minIOClient.MinioClient, &cfg.MinIORemover)
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, &cfg.MinIOUploader)

	journalClient, err := broker.NewClient(cfg.JournalConfig)
	if err != nil {
		ExitOnError(err)
	}
	journal := broker.NewPublisher(journalClient, cfg.PublisherConfig)

	sweeper := usecase.NewSweeper(wishStore, wishStore, invitationStore, invitationStore,
		invitationStore, minIORemover, journal)
	creator := usecase.NewCreator(wishStore, invitationStore)
	getter := usecase.NewGetter(wishStore, invitationStore, sweeper)
	deleter := usecase.NewDeleter(wishStore, wishStore, minIORemover)
	uploader := usecase.NewUploader(minIOUploader)

	sweepScheduler, err := scheduler.New(sweeper, cfg.Sweeper)
	if err != nil {
		ExitOnError(err)
	}
	sweepScheduler.Start()

	wishHandler := handler.NewWishHandler(creator, getter, deleter)
	invitationHandler := handler.NewInvitationHandler(creator, getter)
	uploadHandler := handler.NewUploadHandler(uploader)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("20M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/wishes", wishHandler.HandleCreate)
	e.GET(fmt.Sprintf("/wishes/:%s", presentation.IDParam), wishHandler.HandleGet)
	e.DELETE(fmt.Sprintf("/wishes/:%s", presentation.IDParam), wishHandler.HandleDelete)

	e.POST("/invitations", invitationHandler.HandleCreate)
	e.GET(fmt.Sprintf("/invitations/:%s", presentation.IDParam), invitationHandler.HandleGet)

	e.POST("/upload", uploadHandler.HandleUpload)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()

	<-sweepScheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := journalClient.Close(); err != nil {
		logger.Error("failed to close journal client", "err", err)
	}
	if err := db.Stop(); err != nil {
		logger.Error("failed to stop database", "err", err)
	}
}
