package core

import (
	"errors"
	"fmt"
)

var (
	errTargetExists     = errors.New("target already registered")
	errUnknownTarget    = errors.New("unknown target")
	errInvalidArguments = errors.New("invalid arguments")
)

// Registry хранит статическую таблицу внешних операций.
type Registry struct {
	targets map[string]InvocationTarget
}

// NewRegistry создает пустую таблицу операций.
func NewRegistry() *Registry {
	return &Registry{targets: make(map[string]InvocationTarget)}
}

// Register добавляет операцию; имя должно быть уникальным.
func (r *Registry) Register(target InvocationTarget) error {
	if target.Name == "" {
		return fmt.Errorf("target name is empty: %w", errInvalidArguments)
	}
	if target.Path == "" {
		return fmt.Errorf("target path is empty: %w", errInvalidArguments)
	}
	if _, exists := r.targets[target.Name]; exists {
		return fmt.Errorf("%s: %w", target.Name, errTargetExists)
	}
	r.targets[target.Name] = target
	return nil
}

// Resolve возвращает операцию по имени.
func (r *Registry) Resolve(name string) (InvocationTarget, error) {
	target, ok := r.targets[name]
	if !ok {
		return InvocationTarget{}, fmt.Errorf("%s: %w", name, errUnknownTarget)
	}
	return target, nil
}

// Targets возвращает список имен зарегистрированных операций.
func (r *Registry) Targets() []string {
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	return names
}
