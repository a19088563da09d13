package utils

import (
    "os"
    "path/filepath"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON logger on stdout. When logFile is set the same
// records are appended to that file too. An empty level means info.
func NewLogger(logFile, level string) (*zap.Logger, error) {
    lvl := zapcore.InfoLevel
    if level != "" {
        if err := lvl.UnmarshalText([]byte(level)); err != nil { return nil, err }
    }
    encCfg := zap.NewProductionEncoderConfig()
    encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
    enc := zapcore.NewJSONEncoder(encCfg)
    consoleCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
    if logFile == "" {
        return zap.New(consoleCore), nil
    }
    if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil { return nil, err }
    f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil { return nil, err }
    fileCore := zapcore.NewCore(enc, zapcore.AddSync(f), lvl)
    return zap.New(zapcore.NewTee(fileCore, consoleCore)), nil
}

// MustLogger falls back to a production logger when the configured one
// cannot be built, as the binaries should still report progress.
func MustLogger(logFile, level string) *zap.Logger {
    l, err := NewLogger(logFile, level)
    if err == nil { return l }
    fallback, _ := zap.NewProduction()
    fallback.Warn("Falling back to default logger", zap.Error(err))
    return fallback
}
