package core

import "fmt"

// UnsupportedInputError — распознанное, но неподдерживаемое значение
// параметра; внешняя операция при этом не запускается.
type UnsupportedInputError struct {
	Field string
	Value string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported %s %q: use %q or %q", e.Field, e.Value, ExampleData, ExampleAI)
}

// LaunchError — внешнюю операцию не удалось запустить вовсе
// (нет исполняемого файла, нет прав, нет интерпретатора).
type LaunchError struct {
	Target string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Target, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// OperationError — операция запустилась и завершилась с ненулевым
// статусом; причину диспетчер не классифицирует, stderr передается дословно.
type OperationError struct {
	Target   string
	ExitCode int
	Stderr   string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Target, e.ExitCode)
}

// CancelledError — запуск прерван отменой контекста до завершения операции.
type CancelledError struct {
	Target string
	Err    error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("%s cancelled: %v", e.Target, e.Err)
}

func (e *CancelledError) Unwrap() error { return e.Err }
