package core

import "context"

// Op определяет вариант пользовательской команды.
type Op string

const (
	OpFetchData Op = "fetch-data"
	OpCoaching  Op = "coaching"
	OpExample   Op = "example"
)

// Command описывает один валидированный запрос пользователя.
// Значение строится через конструкторы и после этого не меняется.
type Command struct {
	Op   Op
	Kind string
}

// InvocationTarget описывает внешнюю операцию:
// исполняемый файл и упорядоченный список аргументов.
type InvocationTarget struct {
	Name string
	Path string
	Args []string
}

// InvocationOutcome содержит сырой результат запуска внешней операции.
// stdout и stderr захватываются независимо и не интерпретируются.
type InvocationOutcome struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Runner запускает внешнюю операцию и блокируется до её завершения.
// Ненулевая ошибка означает, что операция не породила результата:
// запуск не удался либо контекст был отменен. Классификация причины
// остается за диспетчером.
type Runner interface {
	Run(ctx context.Context, target InvocationTarget) (InvocationOutcome, error)
}

// Status перечисляет терминальные исходы одной диспетчеризации.
type Status string

const (
	StatusOK               Status = "ok"
	StatusUnsupportedInput Status = "unsupported_input"
	StatusLaunchFailed     Status = "launch_failed"
	StatusOperationFailed  Status = "operation_failed"
	StatusCancelled        Status = "cancelled"
)

// Result описывает унифицированный результат выполнения команды.
// Output заполнен только при StatusOK и содержит stdout дословно;
// Diagnostic заполнен при любом провале.
type Result struct {
	Status     Status `json:"status"`
	Target     string `json:"target,omitempty"`
	Output     string `json:"output,omitempty"`
	Diagnostic string `json:"diagnostic,omitempty"`
	ExitCode   int    `json:"exit_code"`
}
