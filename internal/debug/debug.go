package debug

import (
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/grindlemire/go-gui/internal/config"
)

// EnvDebugFile names the environment variable that enables a debug log file.
const EnvDebugFile = "GUI_DEBUG"

var (
	logger atomic.Pointer[zap.Logger]
	mu     sync.Mutex
	nop    = zap.NewNop()
)

// Init initializes the global logger. console receives human or JSON output
// depending on cfg.Format. Calling Init again replaces the logger.
func Init(cfg config.LogConfig, console zapcore.WriteSyncer) {
	mu.Lock()
	defer mu.Unlock()

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder(cfg.Format), console, level)}
	if cfg.File != "" {
		cores = append(cores, fileCore(cfg, cfg.File, level))
	}
	if path := os.Getenv(EnvDebugFile); path != "" {
		cores = append(cores, fileCore(cfg, path, zap.NewAtomicLevelAt(zap.DebugLevel)))
	}

	opts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if cfg.AddSource {
		opts = append(opts, zap.AddCaller())
	}
	l := zap.New(zapcore.NewTee(cores...), opts...)
	if cfg.Name != "" {
		l = l.Named(cfg.Name)
	}
	if old := logger.Swap(l); old != nil {
		_ = old.Sync()
	}
}

// InitFromEnv installs a debug-level file logger if GUI_DEBUG is set and no
// logger has been initialized yet. It is a no-op otherwise.
func InitFromEnv() {
	if logger.Load() != nil || os.Getenv(EnvDebugFile) == "" {
		return
	}
	Init(config.LogConfig{Level: "debug", Format: "json"}, zapcore.AddSync(discard{}))
}

func fileCore(cfg config.LogConfig, path string, level zapcore.LevelEnabler) zapcore.Core {
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	})
	return zapcore.NewCore(encoder("json"), w, level)
}

func encoder(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if format == "json" {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(encCfg)
	}
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encCfg)
}

// L returns the global logger, or a no-op logger before Init.
func L() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// Named returns a child logger for one component.
func Named(component string) *zap.Logger {
	return L().Named(component)
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	L().Sugar().Debugf(format, args...)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

// Close flushes and removes the global logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if l := logger.Swap(nil); l != nil {
		return l.Sync()
	}
	return nil
}

// ResetForTest clears the global logger. Only use in tests.
func ResetForTest() {
	logger.Store(nil)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
