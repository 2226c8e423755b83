package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"garmincoach/internal/core"
)

// ExecRunner запускает внешние операции через os/exec.
// Дочерний процесс — эксклюзивный ресурс на время вызова: его stdout и
// stderr читаются до конца, handle освобождается на любом пути выхода.
type ExecRunner struct{}

// NewExecRunner создает runner поверх os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run блокируется до завершения операции. stdin не передается,
// окружение наследуется по умолчанию. При отмене контекста убивается
// вся группа процессов, и возвращается ошибка контекста.
func (r *ExecRunner) Run(ctx context.Context, target core.InvocationTarget) (core.InvocationOutcome, error) {
	cmd := exec.Command(target.Path, target.Args...)
	// Отдельная группа процессов, чтобы отмена снимала все дерево.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return core.InvocationOutcome{}, fmt.Errorf("start %s: %w", target.Name, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}
		<-done
		return core.InvocationOutcome{}, fmt.Errorf("run %s: %w", target.Name, ctx.Err())
	case err := <-done:
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return core.InvocationOutcome{
					ExitCode: exitErr.ExitCode(),
					Stdout:   stdout.Bytes(),
					Stderr:   stderr.Bytes(),
				}, nil
			}
			return core.InvocationOutcome{}, fmt.Errorf("wait %s: %w", target.Name, err)
		}
	}

	return core.InvocationOutcome{ExitCode: 0, Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, nil
}
