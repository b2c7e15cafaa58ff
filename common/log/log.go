package log

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// logger 配置热更新时会被替换
var logger atomic.Pointer[log.Logger]

// InitLog 初始化全局日志，输出到 stdout
func InitLog(appName string, logLevel string) {
	InitLogTo(os.Stdout, appName, logLevel)
}

// InitLogTo 指定输出，便于测试捕获
func InitLogTo(w io.Writer, appName string, logLevel string) {
	l := log.New(w)
	l.SetPrefix(appName)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)
	l.SetReportCaller(true)
	l.SetCallerOffset(1)
	l.SetLevel(ParseLevel(logLevel))
	logger.Store(l)
}

// ParseLevel 默认为 info 级别
func ParseLevel(logLevel string) log.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// current 未初始化时使用默认配置
func current() *log.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	l := log.New(os.Stdout)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)
	logger.CompareAndSwap(nil, l)
	return logger.Load()
}

func Fatal(format string, args ...any) {
	if len(args) == 0 {
		current().Fatal(format)
	} else {
		current().Fatalf(format, args...)
	}
}

func Info(format string, args ...any) {
	if len(args) == 0 {
		current().Info(format)
	} else {
		current().Infof(format, args...)
	}
}

func Warn(format string, args ...any) {
	if len(args) == 0 {
		current().Warn(format)
	} else {
		current().Warnf(format, args...)
	}
}

func Error(format string, args ...any) {
	if len(args) == 0 {
		current().Error(format)
	} else {
		current().Errorf(format, args...)
	}
}

func Debug(format string, args ...any) {
	if len(args) == 0 {
		current().Debug(format)
	} else {
		current().Debugf(format, args...)
	}
}

// With 带键值对的子日志
func With(keyvals ...any) *log.Logger {
	return current().With(keyvals...)
}
