package core

import (
	"context"
	"errors"
	"fmt"
)

// Имена внешних операций в таблице разрешения.
const (
	TargetFetch    = "fetch"
	TargetCoaching = "coaching"
)

// Dispatcher переводит команду в запуск ровно одной внешней операции
// и нормализует её исход. Состояния одной диспетчеризации:
// Resolved -> Launching -> {Succeeded | FailedNonZero | FailedToLaunch | Cancelled}.
// Повторных попыток нет, собственного состояния между вызовами нет.
type Dispatcher struct {
	registry *Registry
	runner   Runner

	// PassKindArg добавляет kind последним аргументом операций fetch и
	// coaching. По умолчанию выключено: исторически kind этих команд
	// служит лишь подсказкой и на запуск не влияет.
	PassKindArg bool
}

// NewDispatcher создает диспетчер поверх таблицы операций и runner-а.
func NewDispatcher(registry *Registry, runner Runner) (*Dispatcher, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is nil: %w", errInvalidArguments)
	}
	if runner == nil {
		return nil, fmt.Errorf("runner is nil: %w", errInvalidArguments)
	}
	return &Dispatcher{registry: registry, runner: runner}, nil
}

// resolveName возвращает имя операции для команды.
// Example с нераспознанным kind не разрешается вовсе.
func resolveName(cmd Command) (string, error) {
	switch cmd.Op {
	case OpFetchData:
		return TargetFetch, nil
	case OpCoaching:
		return TargetCoaching, nil
	case OpExample:
		switch cmd.Kind {
		case ExampleData:
			return TargetFetch, nil
		case ExampleAI:
			return TargetCoaching, nil
		default:
			return "", &UnsupportedInputError{Field: "example type", Value: cmd.Kind}
		}
	default:
		return "", fmt.Errorf("op %q: %w", cmd.Op, errUnknownOp)
	}
}

// Dispatch выполняет полный цикл: resolve -> invoke -> normalize.
// Содержимое stdout/stderr не инспектируется; stdout попадает в Result
// только при успешном завершении.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (Result, error) {
	if err := cmd.Validate(); err != nil {
		return Result{Status: StatusUnsupportedInput, Diagnostic: err.Error()}, err
	}

	name, err := resolveName(cmd)
	if err != nil {
		return Result{Status: StatusUnsupportedInput, Diagnostic: err.Error()}, err
	}

	target, err := d.registry.Resolve(name)
	if err != nil {
		launch := &LaunchError{Target: name, Err: err}
		return Result{Status: StatusLaunchFailed, Target: name, Diagnostic: launch.Error()}, launch
	}
	if d.PassKindArg && cmd.Op != OpExample {
		args := make([]string, 0, len(target.Args)+1)
		args = append(args, target.Args...)
		args = append(args, cmd.Kind)
		target.Args = args
	}

	outcome, err := d.runner.Run(ctx, target)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			cancelled := &CancelledError{Target: target.Name, Err: err}
			return Result{Status: StatusCancelled, Target: target.Name, Diagnostic: cancelled.Error()}, cancelled
		}
		launch := &LaunchError{Target: target.Name, Err: err}
		return Result{Status: StatusLaunchFailed, Target: target.Name, Diagnostic: launch.Error()}, launch
	}

	if outcome.ExitCode != 0 {
		opErr := &OperationError{Target: target.Name, ExitCode: outcome.ExitCode, Stderr: string(outcome.Stderr)}
		return Result{
			Status:     StatusOperationFailed,
			Target:     target.Name,
			Diagnostic: string(outcome.Stderr),
			ExitCode:   outcome.ExitCode,
		}, opErr
	}

	return Result{Status: StatusOK, Target: target.Name, Output: string(outcome.Stdout)}, nil
}
