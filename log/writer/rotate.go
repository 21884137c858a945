package writer

import (
	"fmt"
	"strings"
)

// RotateMode 日志轮转模式
type RotateMode int

const (
	// RotateModeTime 按时间轮转 (file-rotatelogs)
	RotateModeTime RotateMode = iota
	// RotateModeSize 按大小轮转 (lumberjack)
	RotateModeSize
)

func (m RotateMode) String() string {
	switch m {
	case RotateModeTime:
		return "time"
	case RotateModeSize:
		return "size"
	default:
		return fmt.Sprintf("RotateMode(%d)", int(m))
	}
}

// ParseRotateMode 解析配置中的轮转模式, 空字符串表示按时间轮转
func ParseRotateMode(s string) (RotateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "time":
		return RotateModeTime, nil
	case "size":
		return RotateModeSize, nil
	default:
		return 0, fmt.Errorf("unsupported rotate mode %q", s)
	}
}
