// Package config provides process-level configuration loaded from embedded
// metadata files and SPESO_* environment variables.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("SPESO_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("SPESO_DEBUG") == "true"
}

// GetDefaultPassword returns the operator-supplied bootstrap admin password,
// empty when a random one should be generated instead.
func GetDefaultPassword() string {
	return os.Getenv("SPESO_DEFAULT_PSW")
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("SPESO_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/spesometro"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("SPESO_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}
