package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	config *LogConfig

	// rootDir là gốc project, nơi đặt thư mục logs khi LogPath là đường dẫn tương đối
	rootDir string
)

// Init khởi tạo hệ thống logging. cfg nil sẽ dùng cấu hình mặc định theo GO_ENV.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if err := resolveRootDir(); err != nil {
		return fmt.Errorf("xác định thư mục gốc thất bại: %w", err)
	}

	if err := os.MkdirAll(logDir(), 0755); err != nil {
		return fmt.Errorf("tạo thư mục logs thất bại: %w", err)
	}
	return nil
}

// resolveRootDir tìm gốc project theo thứ tự: LOG_ROOT_DIR, vị trí binary,
// rồi đi lên từ working directory cho tới khi gặp thư mục logs hoặc config.
// Binary chạy qua systemd thường là symlink nên phải resolve trước.
func resolveRootDir() error {
	if rootDir != "" {
		return nil
	}

	if envRoot := os.Getenv("LOG_ROOT_DIR"); envRoot != "" {
		if resolved, err := filepath.EvalSymlinks(envRoot); err == nil {
			rootDir = resolved
		} else {
			rootDir = envRoot
		}
		return nil
	}

	if executable, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(executable); err == nil {
			executable = resolved
		}
		// binary nằm ở <root>/cmd/server/, đi lên 2 cấp
		candidate := filepath.Dir(filepath.Dir(filepath.Dir(executable)))
		if hasProjectMarker(candidate) {
			rootDir = candidate
			return nil
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("không lấy được working directory: %v", err)
	}
	dir := wd
	for i := 0; i < 5; i++ {
		if hasProjectMarker(dir) {
			rootDir = dir
			return nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	rootDir = wd
	return nil
}

func hasProjectMarker(dir string) bool {
	for _, marker := range []string{"logs", "config"} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func logDir() string {
	if filepath.IsAbs(config.LogPath) {
		return config.LogPath
	}
	return filepath.Join(rootDir, config.LogPath)
}

func logFilePath(name string) string {
	filename := config.fileFor(name)
	if filename == "" {
		filename = name + ".log"
	}
	return filepath.Join(logDir(), filename)
}

// GetLogger trả về logger theo tên (app, audit, error), tạo mới nếu chưa có.
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("khởi tạo logger thất bại: %v", err))
		}
	}

	if logger, ok := loggers[name]; ok {
		return logger
	}
	logger := newLogger(name)
	loggers[name] = logger
	return logger
}

func newLogger(name string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				parts := strings.Split(f.Function, ".")
				return parts[len(parts)-1], fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	var writers []io.Writer
	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFilePath(name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	// FilterHook phải đứng trước AsyncHook: lọc xong mới đưa vào hàng đợi ghi
	logger.AddHook(NewFilterHook(config))

	// Ghi log qua async hook để file I/O chậm không chặn request handler.
	// Output gốc bị discard, nếu không mỗi entry sẽ bị ghi hai lần.
	if len(writers) > 0 {
		logger.AddHook(NewAsyncHookWithWriters(writers, 1000))
		logger.SetOutput(io.Discard)
	}

	logger.SetReportCaller(true)
	logger = logger.WithField("service", name).Logger

	logger.WithFields(logrus.Fields{
		"log_file": logFilePath(name),
		"level":    logger.GetLevel().String(),
		"format":   config.Format,
		"output":   config.Output,
	}).Info("Logger initialized successfully")

	return logger
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetAuditLogger trả về logger ghi vết thay đổi dữ liệu
func GetAuditLogger() *logrus.Logger {
	return GetLogger("audit")
}

// GetErrorLogger trả về logger cho errors
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
