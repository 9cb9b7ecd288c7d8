package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config logger seçenekleri.
type Config struct {
	Env   string // development -> okunabilir konsol; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger zerolog üzerinde ince bir sarmalayıcı; bağımlılık olarak enjekte edilir,
// global paket durumu kullanılmaz.
type Logger struct {
	zl zerolog.Logger
}

// New yapılandırılmış bir logger oluşturur. Development'ta renkli konsol, production'da JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Nop hiçbir şey yazmayan logger döner; testlerde kullanılır.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug, Info, Warn, Error, Fatal zerolog'a delege edilir.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With sabit alanlı bir alt logger bağlamı açar.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
