package main

import (
	"context"
	"fmt"
	"os"

	"garmincoach/internal/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root, state := cli.New(buildVersion())
	root.SetArgs(args)
	defer func() { _ = state.Close() }()

	if err := root.ExecuteContext(context.Background()); err != nil {
		code := cli.ExitCode(err)
		// Диагностика исходов диспетчеризации уже напечатана командой;
		// здесь сообщаем только об ошибках ввода и внутренних сбоях.
		if code == cli.ExitUsage || code == cli.ExitInternal {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return code
	}
	return 0
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
