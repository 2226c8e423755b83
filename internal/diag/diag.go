package diag

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"garmincoach/internal/config"
)

// ScriptCheck описывает доступность одного скрипта внешней операции.
type ScriptCheck struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// Report собирает состояние окружения, от которого зависит запуск
// внешних операций: узел, интерпретатор и скрипты.
type Report struct {
	Hostname        string        `json:"hostname"`
	Platform        string        `json:"platform"`
	PlatformVer     string        `json:"platform_ver"`
	Kernel          string        `json:"kernel"`
	UptimeSec       uint64        `json:"uptime_sec"`
	BootTime        string        `json:"boot_time"`
	MemTotal        uint64        `json:"mem_total"`
	MemUsedPct      float64       `json:"mem_used_pct"`
	Load1           float64       `json:"load1"`
	Interpreter     string        `json:"interpreter"`
	InterpreterPath string        `json:"interpreter_path,omitempty"`
	InterpreterOK   bool          `json:"interpreter_ok"`
	Scripts         []ScriptCheck `json:"scripts"`
}

// Collect строит диагностический отчет. Отсутствие интерпретатора или
// скрипта — не ошибка, а содержимое отчета.
func Collect(ctx context.Context, cfg config.Config) (Report, error) {
	hInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("host info: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("memory info: %w", err)
	}
	ld, err := load.AvgWithContext(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load info: %w", err)
	}

	rep := Report{
		Hostname:    hInfo.Hostname,
		Platform:    hInfo.Platform,
		PlatformVer: hInfo.PlatformVersion,
		Kernel:      hInfo.KernelVersion,
		UptimeSec:   hInfo.Uptime,
		BootTime:    time.Unix(int64(hInfo.BootTime), 0).UTC().Format(time.RFC3339),
		MemTotal:    vm.Total,
		MemUsedPct:  vm.UsedPercent,
		Load1:       ld.Load1,
		Interpreter: cfg.Exec.Interpreter,
	}

	if path, err := exec.LookPath(cfg.Exec.Interpreter); err == nil {
		rep.InterpreterPath = path
		rep.InterpreterOK = true
	}

	rep.Scripts = []ScriptCheck{
		checkScript("fetch", cfg.Exec.FetchScript),
		checkScript("coaching", cfg.Exec.CoachingScript),
	}
	return rep, nil
}

func checkScript(name, path string) ScriptCheck {
	info, err := os.Stat(path)
	return ScriptCheck{
		Name:   name,
		Path:   path,
		Exists: err == nil && !info.IsDir(),
	}
}
