package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	echoweb "github.com/shareulbi/webcore/apps/web/echo"
	"github.com/shareulbi/webcore/core"
	logsvc "github.com/shareulbi/webcore/services/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	conf := core.NewConfig()

	stdLogger := log.New(os.Stdout, "WEB : ", log.LstdFlags)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(stdLogger)
	} else {
		rollbarLogger := logsvc.NewRollbarLogger(stdLogger, conf)
		rollbarLogger.Enable(true)
		logger = rollbarLogger
	}

	app := echoweb.NewServer(&echoweb.Options{
		Address: conf.Server.Addr,
		Conf:    conf,
		Logger:  logger,
	})

	go app.Start()

	select {
	case err := <-app.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-app.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.Stop(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
		}
	}
}
