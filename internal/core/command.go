package core

import (
	"errors"
	"fmt"
)

// Значения kind по умолчанию для каждого варианта команды.
const (
	DefaultDataKind     = "activities"
	DefaultCoachingKind = "activity"
	DefaultExampleKind  = "data"
)

// Поддерживаемые значения kind для команды example.
const (
	ExampleData = "data"
	ExampleAI   = "ai"
)

var (
	errEmptyKind = errors.New("empty kind")
	errUnknownOp = errors.New("unknown op")
)

// NewFetchData строит команду получения данных; пустой kind заменяется
// значением по умолчанию.
func NewFetchData(kind string) Command {
	if kind == "" {
		kind = DefaultDataKind
	}
	return Command{Op: OpFetchData, Kind: kind}
}

// NewCoaching строит команду получения рекомендаций тренера.
func NewCoaching(kind string) Command {
	if kind == "" {
		kind = DefaultCoachingKind
	}
	return Command{Op: OpCoaching, Kind: kind}
}

// NewExample строит команду запуска примера. Семантика kind здесь не
// проверяется: нераспознанное значение отклоняет диспетчер, а не парсер.
func NewExample(kind string) Command {
	if kind == "" {
		kind = DefaultExampleKind
	}
	return Command{Op: OpExample, Kind: kind}
}

// Validate проверяет инвариант команды: известный вариант и непустой kind.
func (c Command) Validate() error {
	switch c.Op {
	case OpFetchData, OpCoaching, OpExample:
	default:
		return fmt.Errorf("op %q: %w", c.Op, errUnknownOp)
	}
	if c.Kind == "" {
		return fmt.Errorf("op %q: %w", c.Op, errEmptyKind)
	}
	return nil
}
