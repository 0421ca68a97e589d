package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const programName = "lancontrol"

// Конечная структура конфигурации процесса.
// Собирается один раз при старте и дальше не меняется.
type Config struct {
	Server struct {
		Address string `mapstructure:"address"` // 0.0.0.0
		Port    int    `mapstructure:"port"`    // 4001
		Debug   bool   `mapstructure:"debug"`   // подробные ошибки, дамп маршрутов
	} `mapstructure:"server"`

	Logging struct {
		Level  string `mapstructure:"level"`  // trace|debug|info|warning|error|fatal
		Format string `mapstructure:"format"` // text|json
		File   string `mapstructure:"file"`   // путь/префикс файла, пусто — только stdout
	} `mapstructure:"logs"`
}

// Load разбирает аргументы командной строки. args == nil — берём os.Args[1:].
// Окружение и файлы конфигурации не читаются.
// При --help возвращает pflag.ErrHelp, при кривых аргументах — ошибку и usage в out.
func Load(args []string, out io.Writer) (*Config, error) {
	if args == nil {
		args = os.Args[1:]
	}

	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(out, "Start the LAN Control server to steer this machine remotely.\n\n"+
			"Usage:\n  %s [--host HOST] [--port PORT] [--debug]\n\nOptions:\n%s",
			programName, fs.FlagUsages())
	}

	fs.String("host", "0.0.0.0", "Host/IP to bind (0.0.0.0 for all interfaces)")
	fs.Int("port", 4001, "Port to listen on")
	fs.Bool("debug", false, "Enable debug mode (detailed error responses)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		fs.Usage()
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("invalid arguments: unexpected %q", fs.Arg(0))
	}

	// Отдельный экземпляр: глобальный viper мог бы подтянуть env
	v := viper.New()

	// Логи — дефолты
	v.SetDefault("logs.level", "info")
	v.SetDefault("logs.format", "text")
	v.SetDefault("logs.file", "")

	for key, flag := range map[string]string{
		"server.address": "host",
		"server.port":    "port",
		"server.debug":   "debug",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("config bind error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	if err := validate(&cfg); err != nil {
		fs.Usage()
		return nil, err
	}
	return &cfg, nil
}

func validate(c *Config) error {
	if strings.TrimSpace(c.Server.Address) == "" {
		return errors.New("invalid arguments: --host must not be empty")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid arguments: --port %d out of range 0-65535", c.Server.Port)
	}
	return nil
}
