package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

var (
	// Info 正常日志，输出到 stdout
	Info *log.Logger

	// Error 错误日志，输出到 stderr
	Error *log.Logger

	debugEnabled bool
)

func init() {
	Info = log.New(os.Stdout, "", log.LstdFlags)
	Error = log.New(os.Stderr, "", log.LstdFlags)
	SetLevel(os.Getenv("LOG_LEVEL"))
}

// SetLevel 设置日志级别, 只有 debug 会打开 Debugf
func SetLevel(level string) {
	debugEnabled = strings.EqualFold(strings.TrimSpace(level), "debug")
}

// SetOutput 重定向日志输出 (CLI/MCP 模式下 stdout 被占用)
func SetOutput(info, errOut io.Writer) {
	Info.SetOutput(info)
	Error.SetOutput(errOut)
}

// Println 输出正常日志到 stdout
func Println(v ...interface{}) {
	Info.Println(v...)
}

// Printf 格式化输出正常日志到 stdout
func Printf(format string, v ...interface{}) {
	Info.Printf(format, v...)
}

// Debugf 调试日志
func Debugf(format string, v ...interface{}) {
	if debugEnabled {
		Info.Printf("[debug] "+format, v...)
	}
}

// Warnf 警告日志, 输出到 stderr
func Warnf(format string, v ...interface{}) {
	Error.Printf("[warn] "+format, v...)
}

// Errorln 输出错误日志到 stderr
func Errorln(v ...interface{}) {
	Error.Println(v...)
}

// Errorf 格式化输出错误日志到 stderr
func Errorf(format string, v ...interface{}) {
	Error.Printf(format, v...)
}

// Fatalf 输出致命错误并退出程序
func Fatalf(format string, v ...interface{}) {
	Error.Fatalf(format, v...)
}
