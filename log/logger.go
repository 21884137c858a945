package log

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/kochabx/formkit/log/writer"
)

// Logger 日志记录器
type Logger struct {
	zerolog.Logger
	closer io.Closer // 文件 writer, 由 Close 释放
}

func init() {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// Close 关闭底层文件, 控制台 Logger 无操作
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Component 返回带 component 字段的子 Logger, 共享底层 writer
func (l *Logger) Component(name string) *Logger {
	return &Logger{Logger: l.With().Str("component", name).Logger()}
}

// NewWriter 输出到指定 writer 的 Logger
func NewWriter(w io.Writer, opts ...Option) *Logger {
	logger := &Logger{
		Logger: zerolog.New(w).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(logger)
	}
	return logger
}

// New 输出到控制台的 Logger
func New(opts ...Option) *Logger {
	return NewWriter(writer.Console(), opts...)
}

// Nop 丢弃所有输出的 Logger
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// NewFile 输出到轮转文件的 Logger
func NewFile(c FileConfig, opts ...Option) (*Logger, error) {
	return newFileLogger(c, false, opts)
}

// NewMulti 同时输出到轮转文件和控制台的 Logger
func NewMulti(c FileConfig, opts ...Option) (*Logger, error) {
	return newFileLogger(c, true, opts)
}

func newFileLogger(c FileConfig, console bool, opts []Option) (*Logger, error) {
	fw, err := c.open()
	if err != nil {
		return nil, fmt.Errorf("failed to create file writer: %w", err)
	}

	var w io.Writer = fw
	if console {
		w = zerolog.MultiLevelWriter(fw, writer.Console())
	}

	logger := NewWriter(w, opts...)
	logger.closer = fw
	return logger, nil
}
