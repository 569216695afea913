// Package job contains the background jobs scheduled by the web server.
package job

import (
	"github.com/domysh/spesometro/database"
	"github.com/domysh/spesometro/logger"
)

type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Here Run is an interface method of the Job interface
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint job err:", err)
	}
}
