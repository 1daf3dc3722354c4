package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/msp-alert-engine/internal/config"
	"github.com/donaldgifford/msp-alert-engine/internal/engine"
	"github.com/donaldgifford/msp-alert-engine/internal/store"
	"github.com/donaldgifford/msp-alert-engine/pkg/logger"
)

var scanTimeout time.Duration

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one escalation scan against the database and exit",
	Long: "Runs a single escalation scan outside the server. Useful when the " +
		"scheduler is disabled and scans are driven by an external cron.",
	RunE: runScan,
}

func init() {
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 5*time.Minute, "maximum scan duration")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(cmd.Context(), scanTimeout)
	defer cancel()

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	pubs, err := buildPublishers(ctx, &cfg.Events, nil, log)
	if err != nil {
		return err
	}
	defer pubs.Close()

	eng := engine.NewEngine(
		pg,
		buildRouter(&cfg.Notifications, nil, log),
		buildDirectory(&cfg.Directory, pg),
		pubs.publisher,
		engine.WithLogger(log),
		engine.WithWorkers(cfg.Escalation.Workers),
	)

	res, err := eng.RunEscalationScan(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("running escalation scan: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Scanned %d alerts: %d executed, %d waiting, %d completed, %d cancelled, %d claims lost, %d errors\n",
		res.Alerts, res.Executed, res.Waiting, res.Completed, res.Cancelled, res.ClaimsLost, res.Errors)
	return nil
}
