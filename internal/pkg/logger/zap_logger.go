package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/maproute/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "maproute"

// ZapLogger wraps zap.Logger with optional file output
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	filePath string
	file     *os.File
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
}

// NewZapLogger creates a new Zap application logger writing JSON to stdout and,
// when a path is configured, to a log file as well.
func NewZapLogger(config ZapConfig) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	zapLogger := &ZapLogger{filePath: config.FilePath}

	if config.FilePath != "" {
		if err := zapLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zapLogger.file), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	zapLogger.Logger = logger
	zapLogger.sugar = logger.Sugar()

	return zapLogger, nil
}

// NewFromZap wraps an existing zap logger, mostly useful in tests with zaptest/observer
func NewFromZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{Logger: l, sugar: l.Sugar()}
}

func (zl *ZapLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// Close syncs the logger and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()

	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// WithFields adds custom fields to log entry
func (zl *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields)+1)
	zapFields = append(zapFields, zap.String("service", serviceName))

	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}

	return zl.Logger.With(zapFields...)
}

// LogHTTPRequest logs an HTTP request at a level matching its status code
func (zl *ZapLogger) LogHTTPRequest(method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	logger := zl.Logger.With(
		zap.String("service", serviceName),
		zap.Int("status", statusCode),
		zap.String("latency", latency.String()),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("client_ip", clientIP),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	switch {
	case statusCode >= 500:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
		} else {
			logger.Error("Server error")
		}
	case statusCode >= 400:
		logger.Warn("Client error")
	default:
		logger.Info("Request processed")
	}
}

// Sugar returns the sugared logger for easier use
func (zl *ZapLogger) Sugar() *zap.SugaredLogger {
	return zl.sugar
}

// GetFilePath returns the current log file path
func (zl *ZapLogger) GetFilePath() string {
	return zl.filePath
}

// InitZapLoggerFromConfig initializes Zap logger directly from config models
func InitZapLoggerFromConfig(configs *models.Config) (*ZapLogger, error) {
	return NewZapLogger(ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
}

// WithError creates a logger with an error field
func (zl *ZapLogger) WithError(err error) *zap.Logger {
	return zl.Logger.With(zap.Error(err))
}
