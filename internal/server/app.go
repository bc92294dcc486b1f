// Package server initializes and runs the application.
// It selects the index and blob storage backends from the configuration,
// wires the services together and starts the web server with graceful
// shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/filevault/internal/logging"
	"github.com/dmitrijs2005/filevault/internal/server/config"
	"github.com/dmitrijs2005/filevault/internal/server/files"
	"github.com/dmitrijs2005/filevault/internal/server/shared/db"
	"github.com/dmitrijs2005/filevault/internal/server/storage"
	"github.com/dmitrijs2005/filevault/internal/server/users"
	"github.com/dmitrijs2005/filevault/internal/server/web"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     db.RepositoryManager
	userService *users.Service
	fileService *files.Service
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewDefault()

	var m db.RepositoryManager
	var err error
	if c.DatabaseDSN != "" {
		m, err = db.NewPostgresRepositoryManager(c.DatabaseDSN)
	} else {
		m, err = db.NewJSONRepositoryManager(c.DataDir)
	}
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var blobs storage.Storage
	if c.S3Bucket != "" {
		blobs, err = storage.NewS3Storage(context.Background(), c)
		if err != nil {
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
	} else {
		blobs = storage.NewDiskStorage(c.FilesRoot)
	}

	us := users.NewService(m.Users())
	fs := files.NewService(m.Files(), blobs)

	return &App{config: c, logger: logger, manager: m, userService: us, fileService: fs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startWebServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := web.NewServer(app.config, app.logger, app.userService, app.fileService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startWebServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
