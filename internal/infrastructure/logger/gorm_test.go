package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		level   gormlogger.LogLevel
		begin   time.Time
		err     error
		wantMsg string
	}{
		{"error is logged", gormlogger.Warn, time.Now(), errors.New("db down"), "SQL error"},
		{"record not found is ignored", gormlogger.Warn, time.Now(), gorm.ErrRecordNotFound, ""},
		{"slow query warns", gormlogger.Warn, time.Now().Add(-time.Second), nil, "Slow SQL"},
		{"fast query at warn is silent", gormlogger.Warn, time.Now(), nil, ""},
		{"info level logs every query", gormlogger.Info, time.Now(), nil, "SQL"},
		{"silent logs nothing", gormlogger.Silent, time.Now(), errors.New("x"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, recorded := observer.New(zapcore.DebugLevel)
			l := NewGormLogger(zap.New(core), tt.level, 200*time.Millisecond)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.wantMsg == "" {
				assert.Zero(t, recorded.Len())
				return
			}
			assert.Equal(t, 1, recorded.FilterMessage(tt.wantMsg).Len())
		})
	}
}

func TestGormLogger_LogMode(t *testing.T) {
	l := NewGormLogger(zap.NewNop(), gormlogger.Warn, 0)
	changed := l.LogMode(gormlogger.Info).(*GormLogger)
	assert.Equal(t, gormlogger.Info, changed.level)
	assert.Equal(t, gormlogger.Warn, l.level)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("whatever"))
}
