package main

import (
	"log"
	"os"

	"github.com/shareulbi/webcore/core"
	"github.com/shareulbi/webcore/core/admin"
	"github.com/shareulbi/webcore/core/content"
	"github.com/shareulbi/webcore/core/identity"
	"github.com/shareulbi/webcore/core/session"
	logsvc "github.com/shareulbi/webcore/services/logger"
	restsvc "github.com/shareulbi/webcore/services/rest"
)

var logger *log.Logger

// shell is a terminal client for the ShareULBI API: it drives the same
// session, content and admin cores the web front-end uses, against the
// configured API origin.
func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "SHELL : ", log.LstdFlags)

	conf := core.NewConfig()
	api, err := restsvc.NewClient(conf)
	errAndDie(err)

	idnSvc := identity.NewService(api)
	adminSvc := admin.NewService(api)

	cli := commandLine{
		store:   session.NewStore(idnSvc),
		content: content.NewService(api),
		admin:   admin.NewStore(adminSvc),
		toggler: content.NewToggler(api, logsvc.NewConsoleLogger(logger)),
		out:     os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
