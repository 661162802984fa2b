package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hredostate/upss-webly/internal/logger"
)

// gormLogger направляет SQL-логи GORM в общий slog-логгер.
type gormLogger struct{}

func newGormLogger() gormlogger.Interface {
	return &gormLogger{}
}

func (l *gormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	logger.Info(msg, "args", args)
}

func (l *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	logger.Warn(msg, "args", args)
}

func (l *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	logger.Error(msg, "args", args)
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()

	// ErrRecordNotFound - штатный результат, не ошибка запроса
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = nil
	}

	logger.DBLog("query", sql, time.Since(begin), err)
}
