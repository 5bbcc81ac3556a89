package zlog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志初始化参数，对应配置文件中的 [logConfig]
type Options struct {
	LogPath    string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	logger *zap.Logger
	mu     sync.RWMutex
)

func init() {
	// 在 Init 之前只输出到 stdout，避免测试或工具命令写日志文件
	logger = zap.New(zapcore.NewCore(encoder(), zapcore.AddSync(os.Stdout), zapcore.InfoLevel), zap.AddCaller(), zap.AddCallerSkip(1))
}

// Init 根据配置重建全局 logger：stdout + lumberjack 滚动文件
func Init(opts Options) {
	level := parseLevel(opts.Level)
	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}

	if p := strings.TrimSpace(opts.LogPath); p != "" {
		_ = os.MkdirAll(filepath.Dir(p), 0o755)
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   p,
			MaxSize:    orDefault(opts.MaxSizeMB, 100),
			MaxBackups: orDefault(opts.MaxBackups, 7),
			MaxAge:     orDefault(opts.MaxAgeDays, 30),
			Compress:   true,
		}))
	}

	core := zapcore.NewCore(encoder(), zapcore.NewMultiWriteSyncer(sinks...), level)
	mu.Lock()
	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	mu.Unlock()
}

// L 返回底层 zap.Logger（gorm 日志适配器等需要）
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { L().Fatal(msg, fields...) }

// Sync 刷新缓冲区，进程退出前调用
func Sync() {
	_ = L().Sync()
}

func encoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func parseLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
