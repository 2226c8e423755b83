package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"garmincoach/internal/core"
	"garmincoach/internal/diag"
	"garmincoach/internal/storage"
)

// dispatcher абстрагирует приложение для тестирования команд.
type dispatcher interface {
	Dispatch(ctx context.Context, cmd core.Command) (core.Result, error)
}

type historySource interface {
	History(ctx context.Context, q storage.DispatchQuery) ([]storage.DispatchRecord, error)
}

type doctorSource interface {
	Doctor(ctx context.Context) (diag.Report, error)
}

func newFetchDataCmd(d dispatcher) *cobra.Command {
	var dataType string
	cmd := &cobra.Command{
		Use:   "fetch-data",
		Short: "Получить данные из Garmin Connect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, d, core.NewFetchData(dataType))
		},
	}
	cmd.Flags().StringVarP(&dataType, "data-type", "d", core.DefaultDataKind, "тип данных (activities, health, stats)")
	return cmd
}

func newCoachingCmd(d dispatcher) *cobra.Command {
	var coachingType string
	cmd := &cobra.Command{
		Use:   "coaching",
		Short: "Получить рекомендации AI-тренера",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, d, core.NewCoaching(coachingType))
		},
	}
	cmd.Flags().StringVarP(&coachingType, "coaching-type", "c", core.DefaultCoachingKind, "тип рекомендаций (activity, health, plan)")
	return cmd
}

func newExampleCmd(d dispatcher) *cobra.Command {
	var exampleType string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Запустить скрипт-пример",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, d, core.NewExample(exampleType))
		},
	}
	cmd.Flags().StringVarP(&exampleType, "example-type", "e", core.DefaultExampleKind, "какой пример запустить (data, ai)")
	return cmd
}

// runDispatch печатает stdout операции дословно при успехе и диагностику
// в stderr при провале; классификация кода выхода остается за main.
func runDispatch(cmd *cobra.Command, d dispatcher, c core.Command) error {
	res, err := d.Dispatch(cmd.Context(), c)
	if err != nil {
		writeDiagnostic(cmd, res.Diagnostic)
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), res.Output)
	return nil
}

func writeDiagnostic(cmd *cobra.Command, diagnostic string) {
	if diagnostic == "" {
		return
	}
	out := cmd.ErrOrStderr()
	fmt.Fprint(out, diagnostic)
	if !strings.HasSuffix(diagnostic, "\n") {
		fmt.Fprintln(out)
	}
}

func newHistoryCmd(src historySource) *cobra.Command {
	var limit int
	var op string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Показать историю диспетчеризаций",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
			defer cancel()

			records, err := src.History(ctx, storage.DispatchQuery{Op: op, Limit: limit})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "максимум записей (0 — лимит из конфига)")
	cmd.Flags().StringVar(&op, "op", "", "фильтр по команде (fetch-data, coaching, example)")
	return cmd
}

func newDoctorCmd(src doctorSource) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Проверить окружение для запуска внешних операций",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			rep, err := src.Doctor(ctx)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		},
	}
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version)
		},
	}
}
