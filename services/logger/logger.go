package logger

import "log"

// Level là ngưỡng log, log dưới ngưỡng sẽ bị bỏ qua
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger là interface log dùng trong các service
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger ghi log qua package log chuẩn
type DefaultLogger struct {
	level Level
}

func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

func (l *DefaultLogger) logf(lv Level, prefix, format string, v ...interface{}) {
	if l.level <= lv {
		log.Printf(prefix+format, v...)
	}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.logf(InfoLevel, "[INFO] ", format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.logf(ErrorLevel, "[ERROR] ", format, v...)
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.logf(DebugLevel, "[DEBUG] ", format, v...)
}
