package writer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotateConfig 日志轮转配置
type RotateConfig struct {
	Mode     RotateMode
	Filepath string
	Filename string
	FileExt  string
	Time     TimeRotateConfig
	Size     SizeRotateConfig
}

// TimeRotateConfig 按时间轮转配置
type TimeRotateConfig struct {
	MaxAge       int // 保留时间(小时)
	RotationTime int // 轮转间隔(小时)
}

// SizeRotateConfig 按大小轮转配置
type SizeRotateConfig struct {
	MaxSize    int // 单个文件最大大小(MB)
	MaxBackups int
	MaxAge     int // 保留天数
	Compress   bool
}

// File 创建轮转文件 writer, 目录不存在时自动创建
func File(config RotateConfig) (io.WriteCloser, error) {
	if config.Filename == "" {
		return nil, errors.New("log filename is required")
	}
	if config.Filepath != "" {
		if err := os.MkdirAll(config.Filepath, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	switch config.Mode {
	case RotateModeTime:
		return byTime(config)
	case RotateModeSize:
		return bySize(config), nil
	default:
		return nil, fmt.Errorf("unsupported rotate mode: %v", config.Mode)
	}
}

// path 返回 <dir>/<name>[.<suffix>].<ext>
func (c RotateConfig) path(suffix string) string {
	parts := []string{c.Filename}
	if suffix != "" {
		parts = append(parts, suffix)
	}
	if ext := strings.TrimPrefix(c.FileExt, "."); ext != "" {
		parts = append(parts, ext)
	}
	return filepath.Join(c.Filepath, strings.Join(parts, "."))
}

func byTime(c RotateConfig) (io.WriteCloser, error) {
	w, err := rotatelogs.New(
		c.path("%Y%m%d%H%M"),
		rotatelogs.WithLinkName(c.path("")),
		rotatelogs.WithMaxAge(time.Duration(c.Time.MaxAge)*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(c.Time.RotationTime)*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("time rotate writer: %w", err)
	}
	return w, nil
}

func bySize(c RotateConfig) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   c.path(""),
		MaxSize:    c.Size.MaxSize,
		MaxBackups: c.Size.MaxBackups,
		MaxAge:     c.Size.MaxAge,
		Compress:   c.Size.Compress,
	}
}
