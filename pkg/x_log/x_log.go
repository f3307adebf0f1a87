package x_log

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu    sync.Mutex
	files []io.Closer // rotated file sinks opened by InitWithConfig
)

//
// ---------- Init ----------

// Init configures the global logger from XLOG_CONFIG or ./xlog.json.
func Init() {
	cfg, err := LoadConfig("")
	if err != nil {
		d := DefaultConfig()
		cfg = &d
	}
	InitWithConfig(cfg, "")
	if err != nil {
		log.Warn().Err(err).Msg("logger config ignored")
	}
}

// InitWithConfig replaces the global logger. Missing fields take their
// defaults; with neither sink enabled the console is used.
func InitWithConfig(cfg *Config, module string) zerolog.Logger {
	c := *cfg
	ApplyDefaults(&c)

	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	mu.Lock()
	closeFiles()
	var writers []io.Writer
	if c.ToFile {
		writers = append(writers, fileWriter(c))
	}
	if c.ToConsole || len(writers) == 0 {
		writers = append(writers, consoleWriter(c, os.Stderr))
	}
	mu.Unlock()

	zc := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if module != "" {
		zc = zc.Str("module", module)
	}
	log.Logger = zc.Logger()
	return log.Logger
}

// Close releases the rotated log files.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFiles()
}

func closeFiles() {
	for _, f := range files {
		_ = f.Close()
	}
	files = nil
}

func fileWriter(c Config) io.Writer {
	_ = os.MkdirAll(filepath.Dir(c.LogFile), 0o755)
	lj := &lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
	files = append(files, lj)
	if !c.ColoredFile {
		return lj
	}
	styles := DefaultStylesByName(c.Style)
	styles.Out = lj
	return ConsoleWriterWithStyles(styles)
}

func consoleWriter(c Config, f *os.File) io.Writer {
	styles := DefaultStylesByName(c.Style)
	styles.Out = f
	cw := ConsoleWriterWithStyles(styles)
	cw.NoColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	return cw
}

//
// ---------- Scoped loggers ----------

// New returns a child of the global logger tagged with module.
func New(module string) zerolog.Logger {
	return log.Logger.With().Str("module", module).Logger()
}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// From returns the logger attached to ctx, or the global one.
func From(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l == nil || l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return l
}

//
// ---------- Global events ----------

func Debug() *zerolog.Event { return log.Logger.Debug() }
func Info() *zerolog.Event  { return log.Logger.Info() }
func Warn() *zerolog.Event  { return log.Logger.Warn() }
func Error() *zerolog.Event { return log.Logger.Error() }
