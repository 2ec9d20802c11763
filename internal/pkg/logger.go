package pkg

import (
	"os"

	"github.com/op/go-logging"
)

var Logger *logging.Logger

// InitLogger 控制台日志，启动时调用一次
func InitLogger(level logging.Level) {
	logger := logging.MustGetLogger("echo-board")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:2006/01/02 15:04:05} %{level:-7s} %{message}`)
	formatted := logging.NewBackendFormatter(backend, format)

	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "echo-board")

	logger.SetBackend(leveled)
	Logger = logger
}

func init() {
	// 测试里不显式初始化时也能用
	InitLogger(logging.INFO)
}
