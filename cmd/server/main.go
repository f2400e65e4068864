package main

import (
	"github.com/pinedance/datalink/internal/server"
	"github.com/pinedance/datalink/internal/util"
	"github.com/pinedance/datalink/pkg/logger"
	"github.com/pinedance/datalink/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
