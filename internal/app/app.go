// Package app wires configuration, storage, use cases and notifiers into one process.
package app

import (
	"antenna_ops/internal/adapter/persistence/repository"
	"antenna_ops/internal/adapter/persistence/sample"
	"antenna_ops/internal/config"
	"antenna_ops/internal/export"
	"antenna_ops/internal/infrastructure/clock"
	"antenna_ops/internal/infrastructure/database"
	"antenna_ops/internal/infrastructure/ids"
	"antenna_ops/internal/infrastructure/notify"
	"antenna_ops/internal/usecase"
	"antenna_ops/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// Options tune the wiring for the API server versus one-shot CLI commands.
type Options struct {
	// Live adds the websocket hub as a reminder sink. The caller must run App.Hub.
	Live bool
	// Out receives logged reminders. Defaults to stdout.
	Out io.Writer
}

// App holds every wired component. Close releases the storage backend.
type App struct {
	Config   *config.Config
	Store    *usecase.Store
	Hub      *notify.Hub
	Renderer *export.Renderer

	Orders       *usecase.OrderUseCase
	Contacts     *usecase.ContactUseCase
	Trainings    *usecase.TrainingUseCase
	Letters      *usecase.LetterUseCase
	Tasks        *usecase.TaskUseCase
	Products     *usecase.ProductUseCase
	MachineTypes *usecase.MachineTypeUseCase
	Reminders    *usecase.ReminderUseCase

	closers []func() error
}

// New builds the app and loads the store. Slots that cannot be read are logged and
// held read-only, not returned as an error.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	clk, err := clock.New(cfg.App.Timezone)
	if err != nil {
		return nil, err
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	a := &App{Config: cfg, Renderer: export.NewRenderer(cfg.Export.FontPath)}
	repo, err := a.openRepository(ctx, cfg.Storage)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Store = usecase.NewStore(repo, clk, ids.New(cfg.App.IDStrategy, clk), sample.Dataset)
	if err := a.Store.Load(ctx); err != nil {
		log.Printf("[app][load] some slots could not be read and are held read-only err=%v", err)
	}

	sinks := notify.MultiNotifier{notify.NewLogNotifier(opts.Out)}
	if opts.Live {
		a.Hub = notify.NewHub()
		sinks = append(sinks, a.Hub)
	}
	notifier, err := notify.NewDedupNotifier(sinks, cfg.Notify.DedupSize)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Orders = usecase.NewOrderUseCase(a.Store)
	a.Contacts = usecase.NewContactUseCase(a.Store)
	a.Trainings = usecase.NewTrainingUseCase(a.Store)
	a.Letters = usecase.NewLetterUseCase(a.Store)
	a.Tasks = usecase.NewTaskUseCase(a.Store)
	a.Products = usecase.NewProductUseCase(a.Store)
	a.MachineTypes = usecase.NewMachineTypeUseCase(a.Store)
	a.Reminders = usecase.NewReminderUseCase(a.Store, notifier)
	return a, nil
}

// Start runs the hub in live mode and checks reminders once for tasks already due.
func (a *App) Start(ctx context.Context) {
	if a.Hub != nil {
		go a.Hub.Run(ctx)
	}
	sent, err := a.Reminders.CheckNow(ctx)
	if err != nil {
		log.Printf("[app][start] reminder check failed err=%v", err)
		return
	}
	log.Printf("[app][start] reminder check sent=%d", len(sent))
}

func (a *App) openRepository(ctx context.Context, cfg config.StorageConfig) (interfaces.ISlotRepository, error) {
	switch cfg.Backend {
	case config.BackendBadger:
		db, err := database.OpenBadger(cfg.Badger.Path)
		if err != nil {
			return nil, fmt.Errorf("open badger: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		return repository.NewBadgerSlotRepository(db), nil
	case config.BackendDynamoDB:
		client, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return repository.NewDynamoSlotRepository(client, cfg.DynamoDB.Table), nil
	case config.BackendRedis:
		rdb, err := database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, rdb.Close)
		return repository.NewRedisSlotRepository(rdb, cfg.Redis.Prefix), nil
	case config.BackendPostgres:
		db, err := database.NewPostgresConnection(cfg.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		return repository.NewPostgresSlotRepository(db)
	case config.BackendMemory:
		return repository.NewMemorySlotRepository(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

// Close releases the backend. Every mutation is already persisted when it happens.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
