package logger

import (
	"os"
	"strings"

	"github.com/caarlos0/env"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	// Level: trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL"`

	// Format: json, text
	Format string `env:"LOG_FORMAT"`

	// Output: file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"both"`

	// Rotation (lumberjack)
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"`  // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"` // số file cũ giữ lại
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"`     // số ngày giữ lại
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"`

	// Đường dẫn file log
	LogPath   string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile   string `env:"LOG_APP_FILE" envDefault:"app.log"`
	AuditFile string `env:"LOG_AUDIT_FILE" envDefault:"audit.log"`
	ErrorFile string `env:"LOG_ERROR_FILE" envDefault:"error.log"`

	// Bộ lọc theo field (danh sách phân cách bằng dấu phẩy, "*" = cho phép tất cả)
	FilterModules     string `env:"LOG_FILTER_MODULES" envDefault:"*"`
	FilterCollections string `env:"LOG_FILTER_COLLECTIONS" envDefault:"*"`
	FilterEndpoints   string `env:"LOG_FILTER_ENDPOINTS" envDefault:"*"`
	FilterMethods     string `env:"LOG_FILTER_METHODS" envDefault:"*"`
	FilterLogTypes    string `env:"LOG_FILTER_LOG_TYPES" envDefault:"*"`
}

// DefaultConfig đọc cấu hình từ environment variables.
// Level và Format không đặt qua env sẽ theo GO_ENV: development ghi text/debug,
// còn lại ghi json/info.
func DefaultConfig() *LogConfig {
	config := &LogConfig{}
	if err := env.Parse(config); err != nil {
		// Parse chỉ lỗi khi giá trị env sai kiểu, rơi về mặc định cố định
		config = &LogConfig{
			Output:            "both",
			MaxSize:           100,
			MaxBackups:        7,
			MaxAge:            7,
			Compress:          true,
			LogPath:           "./logs",
			AppFile:           "app.log",
			AuditFile:         "audit.log",
			ErrorFile:         "error.log",
			FilterModules:     "*",
			FilterCollections: "*",
			FilterEndpoints:   "*",
			FilterMethods:     "*",
			FilterLogTypes:    "*",
		}
	}

	isDev := os.Getenv("GO_ENV") == "" || os.Getenv("GO_ENV") == "development"
	if config.Level == "" {
		if isDev {
			config.Level = "debug"
		} else {
			config.Level = "info"
		}
	}
	if config.Format == "" {
		if isDev {
			config.Format = "text"
		} else {
			config.Format = "json"
		}
	}
	config.Level = strings.ToLower(config.Level)
	config.Format = strings.ToLower(config.Format)
	config.Output = strings.ToLower(config.Output)

	return config
}

// fileFor trả về tên file log cho logger name, rỗng nếu không có cấu hình riêng.
func (c *LogConfig) fileFor(name string) string {
	switch name {
	case "app":
		return c.AppFile
	case "audit":
		return c.AuditFile
	case "error":
		return c.ErrorFile
	}
	return ""
}
