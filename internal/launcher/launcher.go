// Package launcher — точка входа процесса: аргументы, логи, запуск приложения.
package launcher

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"lancontrol/config"
	"lancontrol/internal/logs"
)

// Коды выхода процесса.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitBadUsage = 2
)

// Server — то, что умеет отдать фабрика приложения.
// Run блокируется на всё время жизни сервера.
type Server interface {
	Run(host string, port int, debug bool) error
}

// Factory собирает экземпляр приложения.
type Factory func() Server

// подменяется в тестах
var initLogging = logs.Init

// Main разбирает args (nil — аргументы процесса), один раз настраивает логи,
// собирает приложение и запускает его. Возвращает код выхода.
func Main(args []string, stderr io.Writer, newApp Factory) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintln(stderr, err)
		return ExitBadUsage
	}

	initLogging(logs.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})

	app := newApp()
	if err := app.Run(cfg.Server.Address, cfg.Server.Port, cfg.Server.Debug); err != nil {
		logs.Logger.Errorf("server: %v", err)
		return ExitFailure
	}
	return ExitOK
}
