package log

import (
	"io"

	"github.com/kochabx/formkit/log/writer"
)

// FileConfig 日志文件配置
type FileConfig struct {
	Filepath         string           `json:"filepath" mapstructure:"filepath"`
	Filename         string           `json:"filename" mapstructure:"filename"`
	FileExt          string           `json:"file_ext" mapstructure:"file_ext"`
	RotateMode       string           `json:"rotate_mode" mapstructure:"rotate_mode" validate:"omitempty,oneof=time size"`
	RotatelogsConfig RotatelogsConfig `json:"rotatelogs_config" mapstructure:"rotatelogs_config"`
	LumberjackConfig LumberjackConfig `json:"lumberjack_config" mapstructure:"lumberjack_config"`
}

// RotatelogsConfig 按时间轮转配置
type RotatelogsConfig struct {
	MaxAge       int `json:"max_age" mapstructure:"max_age"`
	RotationTime int `json:"rotation_time" mapstructure:"rotation_time"`
}

// LumberjackConfig 按大小轮转配置
type LumberjackConfig struct {
	MaxSize    int  `json:"max_size" mapstructure:"max_size"`
	MaxBackups int  `json:"max_backups" mapstructure:"max_backups"`
	MaxAge     int  `json:"max_age" mapstructure:"max_age"`
	Compress   bool `json:"compress" mapstructure:"compress"`
}

// applyDefaults 填充零值字段
func (c *FileConfig) applyDefaults() {
	setDefault(&c.Filepath, "log")
	setDefault(&c.Filename, "formkit")
	setDefault(&c.FileExt, "log")
	setDefault(&c.RotatelogsConfig.MaxAge, 24)
	setDefault(&c.RotatelogsConfig.RotationTime, 1)
	setDefault(&c.LumberjackConfig.MaxSize, 100)
	setDefault(&c.LumberjackConfig.MaxBackups, 5)
	setDefault(&c.LumberjackConfig.MaxAge, 30)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// open 打开配置描述的轮转文件
func (c FileConfig) open() (io.WriteCloser, error) {
	c.applyDefaults()

	mode, err := writer.ParseRotateMode(c.RotateMode)
	if err != nil {
		return nil, err
	}

	return writer.File(writer.RotateConfig{
		Mode:     mode,
		Filepath: c.Filepath,
		Filename: c.Filename,
		FileExt:  c.FileExt,
		Time: writer.TimeRotateConfig{
			MaxAge:       c.RotatelogsConfig.MaxAge,
			RotationTime: c.RotatelogsConfig.RotationTime,
		},
		Size: writer.SizeRotateConfig{
			MaxSize:    c.LumberjackConfig.MaxSize,
			MaxBackups: c.LumberjackConfig.MaxBackups,
			MaxAge:     c.LumberjackConfig.MaxAge,
			Compress:   c.LumberjackConfig.Compress,
		},
	})
}
