package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(levelFromEnv())
	var err error
	L, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

// LOG_LEVEL 無法解析時退回 info
func levelFromEnv() zapcore.Level {
	level, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// WithComponent 回傳帶有 component 欄位的 logger，供 queue、handler、service、provider 等使用
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// WithUser 在 component logger 上再加上 user_id，帳本與生圖流程的 log 都以使用者為單位
func WithUser(component string, userID string) *zap.Logger {
	return WithComponent(component).With(zap.String("user_id", userID))
}

// Sync 在程式結束前 flush 緩衝
func Sync() {
	_ = L.Sync()
}
