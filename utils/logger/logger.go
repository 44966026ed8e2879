package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/octabyte/smartsaas-go/enums"
)

type Config struct {
	Level       string
	Env         string
	ServiceName string
}

func Init(cfg *Config) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:         zap.NewAtomicLevelAt(getLogLevelFromString(cfg.Level)),
		Encoding:      "json",
		EncoderConfig: encoderCfg,
		OutputPaths: []string{
			"stdout",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"env":     cfg.Env,
			"service": cfg.ServiceName,
		},
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	logger = logger.WithOptions(zap.AddCallerSkip(1))

	zap.ReplaceGlobals(logger)
}

func LogDebug(msg string, fields ...zap.Field) {
	zap.L().Debug(msg, fields...)
}

func LogDebugf(msg string, args ...interface{}) {
	if len(args) == 0 {
		zap.L().Debug(msg)
		return
	}
	zap.L().Debug(fmt.Sprintf(msg, args...))
}

func LogInfo(msg string, fields ...zap.Field) {
	zap.L().Info(msg, fields...)
}

func LogInfof(msg string, args ...interface{}) {
	if len(args) == 0 {
		zap.L().Info(msg)
		return
	}
	zap.L().Info(fmt.Sprintf(msg, args...))
}

func LogWarn(msg string, fields ...zap.Field) {
	zap.L().Warn(msg, fields...)
}

func LogWarnf(msg string, args ...interface{}) {
	if len(args) == 0 {
		zap.L().Warn(msg)
		return
	}
	zap.L().Warn(fmt.Sprintf(msg, args...))
}

func LogError(msg string, fields ...zap.Field) {
	zap.L().Error(msg, fields...)
}

func LogErrorf(msg string, args ...interface{}) {
	if len(args) == 0 {
		zap.L().Error(msg)
		return
	}
	zap.L().Error(fmt.Sprintf(msg, args...))
}

func LogFatal(msg string, fields ...zap.Field) {
	zap.L().Fatal(msg, fields...)
}

func getLogLevelFromString(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case enums.LogLevelDebug, "dbg":
		return zapcore.DebugLevel
	case enums.LogLevelInfo:
		return zapcore.InfoLevel
	case enums.LogLevelWarn, "warning":
		return zapcore.WarnLevel
	case enums.LogLevelError, "err":
		return zapcore.ErrorLevel
	case enums.LogLevelFatal:
		return zapcore.FatalLevel
	case enums.LogLevelPanic:
		return zapcore.PanicLevel
	default:
		return zapcore.InfoLevel
	}
}

func Sync() {
	_ = zap.L().Sync()
}
