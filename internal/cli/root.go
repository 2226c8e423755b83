package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"garmincoach/internal/app"
	"garmincoach/internal/config"
	"garmincoach/internal/core"
	"garmincoach/internal/diag"
	"garmincoach/internal/storage"
	"garmincoach/pkg/logger"
)

// Коды выхода процесса по таксономии исходов.
const (
	ExitOK               = 0
	ExitInternal         = 1
	ExitUsage            = 2
	ExitUnsupportedInput = 3
	ExitLaunchFailure    = 4
	ExitOperationFailure = 5
	ExitCancelled        = 6
)

// UsageError — некорректный ввод CLI; диспетчеризация не начиналась.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Root держит разделяемое состояние команд: путь к конфигу
// и лениво собранное приложение.
type Root struct {
	version    string
	configPath string
	app        *app.App
}

// New создает корневую CLI-команду.
func New(version string) (*cobra.Command, *Root) {
	state := &Root{version: version}

	root := &cobra.Command{
		Use:           "garmincoach",
		Short:         "Персональный тренер для устройств Garmin",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&state.configPath, "config", "", "путь к файлу конфигурации YAML")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	root.AddCommand(newFetchDataCmd(state))
	root.AddCommand(newCoachingCmd(state))
	root.AddCommand(newExampleCmd(state))
	root.AddCommand(newHistoryCmd(state))
	root.AddCommand(newDoctorCmd(state))
	root.AddCommand(newVersionCmd(version))

	return root, state
}

func (r *Root) load() (*app.App, error) {
	if r.app != nil {
		return r.app, nil
	}
	cfg, err := config.Load(r.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	a, err := app.NewApp(cfg, logger.New(cfg.Agent.LogLevel))
	if err != nil {
		return nil, err
	}
	r.app = a
	return a, nil
}

// Dispatch лениво собирает приложение и выполняет команду.
func (r *Root) Dispatch(ctx context.Context, cmd core.Command) (core.Result, error) {
	a, err := r.load()
	if err != nil {
		return core.Result{}, err
	}
	return a.Dispatch(ctx, cmd)
}

// History возвращает записи истории диспетчеризаций.
func (r *Root) History(ctx context.Context, q storage.DispatchQuery) ([]storage.DispatchRecord, error) {
	a, err := r.load()
	if err != nil {
		return nil, err
	}
	return a.History(ctx, q)
}

// Doctor собирает диагностику окружения.
func (r *Root) Doctor(ctx context.Context) (diag.Report, error) {
	a, err := r.load()
	if err != nil {
		return diag.Report{}, err
	}
	return a.Doctor(ctx)
}

// Close высвобождает ресурсы, созданные командами.
func (r *Root) Close() error {
	if r.app != nil {
		return r.app.Close()
	}
	return nil
}

// ExitCode переводит ошибку выполнения в код выхода процесса.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var unsupported *core.UnsupportedInputError
	var launch *core.LaunchError
	var operation *core.OperationError
	var cancelled *core.CancelledError
	var usage *UsageError
	switch {
	case errors.As(err, &unsupported):
		return ExitUnsupportedInput
	case errors.As(err, &launch):
		return ExitLaunchFailure
	case errors.As(err, &operation):
		return ExitOperationFailure
	case errors.As(err, &cancelled):
		return ExitCancelled
	case errors.As(err, &usage):
		return ExitUsage
	}
	return ExitInternal
}
