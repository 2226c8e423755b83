package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config описывает основные параметры CLI.
type Config struct {
	Agent struct {
		LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	} `yaml:"agent"`
	Exec struct {
		Interpreter    string `yaml:"interpreter" env:"GARMINCOACH_INTERPRETER"`
		FetchScript    string `yaml:"fetch_script" env:"GARMINCOACH_FETCH_SCRIPT"`
		CoachingScript string `yaml:"coaching_script" env:"GARMINCOACH_COACHING_SCRIPT"`
		// PassKindArg добавляет kind последним аргументом скрипта.
		// Выключено по умолчанию: исторически kind на запуск не влияет.
		PassKindArg bool `yaml:"pass_kind_arg" env:"GARMINCOACH_PASS_KIND_ARG"`
		// TimeoutMS ограничивает запуск операции; 0 — без ограничения.
		TimeoutMS int `yaml:"timeout_ms" env:"GARMINCOACH_TIMEOUT_MS"`
	} `yaml:"exec"`
	History struct {
		Enabled      bool   `yaml:"enabled" env:"GARMINCOACH_HISTORY_ENABLED"`
		Path         string `yaml:"path" env:"GARMINCOACH_HISTORY_PATH"`
		LimitDefault int    `yaml:"limit_default"`
	} `yaml:"history"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	var cfg Config
	cfg.Agent.LogLevel = "info"
	cfg.Exec.Interpreter = "python3"
	cfg.Exec.FetchScript = "python_client/example.py"
	cfg.Exec.CoachingScript = "python_client/ai_example.py"
	cfg.Exec.PassKindArg = false
	cfg.Exec.TimeoutMS = 0
	cfg.History.Enabled = false
	cfg.History.Path = "garmincoach.db"
	cfg.History.LimitDefault = 20
	return cfg
}

// Load читает конфиг из файла YAML поверх значений по умолчанию,
// затем применяет переопределения из переменных окружения.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- путь к конфигу задается оператором.
		if err != nil {
			return cfg, err
		}
		if len(data) == 0 {
			return cfg, errors.New("config file is empty")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
