package log

import (
	"github.com/rs/zerolog"
)

// Option Logger 选项函数
type Option func(*Logger)

// WithLevel 设置日志级别
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) {
		l.Logger = l.Logger.Level(level)
	}
}

// WithLevelName 按名称设置日志级别, 无法解析时保持不变
func WithLevelName(name string) Option {
	return func(l *Logger) {
		if level, err := zerolog.ParseLevel(name); err == nil && name != "" {
			l.Logger = l.Logger.Level(level)
		}
	}
}

// WithCaller 设置调用栈信息
func WithCaller() Option {
	return func(l *Logger) {
		l.Logger = l.Logger.With().Caller().Logger()
	}
}

// WithComponent 为所有日志添加 component 字段
func WithComponent(name string) Option {
	return func(l *Logger) {
		l.Logger = l.Logger.With().Str("component", name).Logger()
	}
}
