// Package blelog provides the module-level logger used by ble/att, in place
// of the "logger" package the vendored ATT server referred to without a
// definition. It follows the teacher's own logging.go: a single package
// logger from github.com/op/go-logging, a formatted stderr backend (there is
// no syslog backend), and a level controlled by the BLE_LOG_LEVEL
// environment variable.
package blelog

import (
	"os"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("ble")

var stderrFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.6s} ▶ %{shortfile} %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, stderrFormat)
	leveled := logging.AddModuleLevel(formatted)
	level := logging.WARNING
	switch os.Getenv("BLE_LOG_LEVEL") {
	case "CRITICAL":
		level = logging.CRITICAL
	case "ERROR":
		level = logging.ERROR
	case "NOTICE":
		level = logging.NOTICE
	case "INFO":
		level = logging.INFO
	case "DEBUG":
		level = logging.DEBUG
	}
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

// Debug logs a formatted debug-level message.
func Debug(format string, args ...interface{}) { log.Debugf(format, args...) }

// Info logs a formatted info-level message.
func Info(format string, args ...interface{}) { log.Infof(format, args...) }

// Error logs a formatted error-level message.
func Error(format string, args ...interface{}) { log.Errorf(format, args...) }
