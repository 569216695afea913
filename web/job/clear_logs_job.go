package job

import (
	"os"
	"path/filepath"

	"github.com/domysh/spesometro/config"
	"github.com/domysh/spesometro/logger"
)

type ClearLogsJob struct{}

func NewClearLogsJob() *ClearLogsJob {
	return new(ClearLogsJob)
}

// Here Run is an interface method of the Job interface
func (j *ClearLogsJob) Run() {
	logPath := filepath.Join(config.GetLogFolder(), "spesometro.log")
	prevPath := logPath + ".prev"

	if err := os.Truncate(prevPath, 0); err != nil && !os.IsNotExist(err) {
		logger.Warning("clear logs job err:", err)
	}

	prevFile, err := os.OpenFile(prevPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0644)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}
	defer prevFile.Close()

	logContent, err := os.ReadFile(logPath)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}
	if _, err = prevFile.Write(logContent); err != nil {
		logger.Warning("clear logs job err:", err)
	}

	if err = os.Truncate(logPath, 0); err != nil {
		logger.Warning("clear logs job err:", err)
	}
}
