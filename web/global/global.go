// Package global holds the process-scoped reference to the running web
// server, set at startup and torn down at shutdown.
package global

import (
	"context"

	"github.com/robfig/cron/v3"
)

var webServer WebServer

type WebServer interface {
	GetCron() *cron.Cron
	GetCtx() context.Context
	GetWSHub() any
}

func SetWebServer(s WebServer) {
	webServer = s
}

func GetWebServer() WebServer {
	return webServer
}
