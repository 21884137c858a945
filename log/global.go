package log

import (
	"github.com/rs/zerolog"
)

// G 全局日志实例, 各组件未显式注入 Logger 时使用
var G = New()

// SetGlobalLogger 替换全局日志实例, nil 被忽略
func SetGlobalLogger(logger *Logger) {
	if logger != nil {
		G = logger
	}
}

// SetGlobalLevel 调整全局日志实例的级别
func SetGlobalLevel(level zerolog.Level) {
	G.Logger = G.Logger.Level(level)
}

// SetZerologGlobalLevel 设置 zerolog 进程级别, 对所有 Logger 生效
func SetZerologGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

func Debug() *zerolog.Event { return G.Debug() }

func Info() *zerolog.Event { return G.Info() }

func Warn() *zerolog.Event { return G.Warn() }

// Error 返回 error 级别的日志事件 (带堆栈)
func Error() *zerolog.Event { return G.Error().Stack() }
