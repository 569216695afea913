package service

import (
	"runtime"
	"time"

	"github.com/domysh/spesometro/database"
	"github.com/domysh/spesometro/database/model"
	"github.com/domysh/spesometro/logger"
	"github.com/domysh/spesometro/web/websocket"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Status represents host and application status for the admin dashboard.
type Status struct {
	T        time.Time `json:"-"`
	Cpu      float64   `json:"cpu"`
	CpuCores int       `json:"cpuCores"`
	Mem      struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
	Uptime    uint64    `json:"uptime"`
	Loads     []float64 `json:"loads"`
	Boards    int64     `json:"boards"`
	Users     int64     `json:"users"`
	WsClients int       `json:"wsClients"`
	AppStats  struct {
		Threads uint32 `json:"threads"`
		Mem     uint64 `json:"mem"`
		Uptime  uint64 `json:"uptime"`
	} `json:"appStats"`
}

type ServerService struct{}

var serverStart = time.Now()

func (s *ServerService) GetStatus() *Status {
	now := time.Now()
	status := &Status{T: now}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	status.CpuCores, err = cpu.Counts(false)
	if err != nil {
		logger.Warning("get cpu cores count failed:", err)
	}

	upTime, err := host.Uptime()
	if err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = upTime
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	avgState, err := load.Avg()
	if err != nil {
		logger.Warning("get load avg failed:", err)
	} else {
		status.Loads = []float64{avgState.Load1, avgState.Load5, avgState.Load15}
	}

	db := database.GetDB()
	if err := db.Model(model.Board{}).Count(&status.Boards).Error; err != nil {
		logger.Warning("count boards failed:", err)
	}
	if err := db.Model(model.User{}).Count(&status.Users).Error; err != nil {
		logger.Warning("count users failed:", err)
	}

	status.WsClients = websocket.GetHub().GetClientCount()

	var rtm runtime.MemStats
	runtime.ReadMemStats(&rtm)
	status.AppStats.Mem = rtm.Sys
	status.AppStats.Threads = uint32(runtime.NumGoroutine())
	status.AppStats.Uptime = uint64(now.Sub(serverStart).Seconds())

	return status
}
