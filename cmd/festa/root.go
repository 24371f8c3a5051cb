package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/festaperfeita/festa"
	"github.com/festaperfeita/festa/internal/config"
	"github.com/festaperfeita/festa/internal/gateway"
	"github.com/festaperfeita/festa/internal/storage"
)

// app holds the wired process state shared by every subcommand.
type app struct {
	log       zerolog.Logger
	store     *festa.Store
	sessions  *festa.SessionManager
	partition *storage.SnapshotStore
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a.log = zerolog.New(os.Stderr).Level(cfg.LogLevel()).With().Timestamp().Logger()

	a.partition, err = storage.Open(filepath.Join(cfg.DataDir, "festa.db"))
	if err != nil {
		return err
	}

	gw := gateway.NewREST(cfg.GatewayURL, cfg.GatewayKey,
		gateway.WithLogger(a.log),
		gateway.WithHTTPTimeout(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second),
		gateway.WithDebugLogging(cfg.Debug),
	)

	a.store, err = festa.New(gw,
		festa.WithLogger(a.log),
		festa.WithPartition(a.partition),
	)
	if err != nil {
		return err
	}

	a.sessions = festa.NewSessionManager(a.store)
	if err := a.sessions.Hydrate(cmd.Context()); err != nil {
		a.log.Warn().Err(err).Msg("session hydration failed")
	}
	return nil
}

func (a *app) teardown() {
	if a.sessions != nil {
		a.sessions.Close()
	}
	if a.partition != nil {
		_ = a.partition.Close()
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "festa",
		Short:         "Plan the perfect party from your terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.teardown()
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newGuestsCmd(a),
		newShoppingCmd(a),
		newBudgetCmd(a),
		newTemplateCmd(a),
		newChatCmd(a),
		newQuizCmd(a),
	)
	return root
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
