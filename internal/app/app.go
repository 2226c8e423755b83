package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"garmincoach/internal/config"
	"garmincoach/internal/core"
	"garmincoach/internal/diag"
	"garmincoach/internal/proc"
	"garmincoach/internal/storage"
	"garmincoach/internal/storage/sqlite"
)

var errHistoryDisabled = errors.New("history is disabled; enable it in the config")

// App агрегирует зависимости CLI: диспетчер, хранилище истории и логгер.
type App struct {
	Config     config.Config
	Dispatcher *core.Dispatcher
	Store      storage.Store
	Log        *slog.Logger
}

// NewApp строит приложение: таблицу операций, runner и хранилище истории.
func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	registry := core.NewRegistry()
	targets := []core.InvocationTarget{
		{Name: core.TargetFetch, Path: cfg.Exec.Interpreter, Args: []string{cfg.Exec.FetchScript}},
		{Name: core.TargetCoaching, Path: cfg.Exec.Interpreter, Args: []string{cfg.Exec.CoachingScript}},
	}
	for _, target := range targets {
		if err := registry.Register(target); err != nil {
			return nil, fmt.Errorf("register %s target: %w", target.Name, err)
		}
	}

	dispatcher, err := core.NewDispatcher(registry, proc.NewExecRunner())
	if err != nil {
		return nil, fmt.Errorf("build dispatcher: %w", err)
	}
	dispatcher.PassKindArg = cfg.Exec.PassKindArg

	var store storage.Store
	if cfg.History.Enabled {
		st, err := sqlite.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history storage: %w", err)
		}
		store = st
	}

	return &App{
		Config:     cfg,
		Dispatcher: dispatcher,
		Store:      store,
		Log:        log,
	}, nil
}

// Dispatch выполняет команду и фиксирует исход в истории.
// Запись истории best-effort и на результат не влияет.
func (a *App) Dispatch(ctx context.Context, cmd core.Command) (core.Result, error) {
	if t := a.Config.Exec.TimeoutMS; t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(t)*time.Millisecond)
		defer cancel()
	}

	if a.Log != nil {
		a.Log.Info("dispatching", "op", string(cmd.Op), "kind", cmd.Kind)
	}

	started := time.Now()
	res, err := a.Dispatcher.Dispatch(ctx, cmd)
	a.saveHistory(ctx, cmd, res, time.Since(started))
	return res, err
}

// History возвращает записи выборки истории; лимит по умолчанию из конфига.
func (a *App) History(ctx context.Context, q storage.DispatchQuery) ([]storage.DispatchRecord, error) {
	if a.Store == nil {
		return nil, errHistoryDisabled
	}
	if q.Limit <= 0 {
		q.Limit = a.Config.History.LimitDefault
	}
	return a.Store.QueryDispatches(ctx, q)
}

// Doctor собирает диагностику окружения.
func (a *App) Doctor(ctx context.Context) (diag.Report, error) {
	return diag.Collect(ctx, a.Config)
}

func (a *App) saveHistory(ctx context.Context, cmd core.Command, res core.Result, elapsed time.Duration) {
	if a.Store == nil {
		return
	}
	rec := storage.DispatchRecord{
		Op:         string(cmd.Op),
		Kind:       cmd.Kind,
		Target:     res.Target,
		Status:     string(res.Status),
		ExitCode:   res.ExitCode,
		DurationMS: elapsed.Milliseconds(),
		Diagnostic: res.Diagnostic,
	}
	// Контекст диспетчеризации мог истечь; запись выполняется вне его.
	if err := a.Store.SaveDispatch(context.WithoutCancel(ctx), rec); err != nil && a.Log != nil {
		a.Log.Warn("save dispatch history", "err", err)
	}
}

// Close высвобождает ресурсы приложения.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
