package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/hothifafawaz/restoflow/pkg/advisor"
	"github.com/hothifafawaz/restoflow/pkg/app"
	"github.com/hothifafawaz/restoflow/pkg/ui"
)

func main() {
	cliApp := &cli.App{
		Name:  "restoflow",
		Usage: "single-terminal restaurant POS and guest self-ordering",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-file",
				Value: "restoflow.log",
				Usage: "structured log destination (keeps the screens clean)",
			},
			&cli.BoolFlag{
				Name:  "staff",
				Usage: "start on the staff screens instead of the guest screen",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.WithError(err).Fatal("restoflow exited")
	}
}

func run(c *cli.Context) error {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})
	if file, err := os.OpenFile(c.String("log-file"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666); err == nil {
		logger.SetOutput(file)
		defer file.Close()
	}

	cfg, err := advisor.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		logger.Warn("no AI API key configured, advisory features fall back to fixed text")
	}

	a := app.New(advisor.NewClient(cfg, logger), logger)

	items, _ := a.Catalog.Items()
	tables, _ := a.Tables.ListTables()
	logger.WithFields(log.Fields{"menu_items": len(items), "tables": len(tables)}).Info("stores seeded")

	return ui.New(a, os.Stdin, os.Stdout).Run(c.Context, c.Bool("staff"))
}
