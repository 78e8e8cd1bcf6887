package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the arcade over SSH",
	Long: `Run an SSH server where every connection gets the full arcade:
game menu, difficulty picker, scoreboard and games.

All sessions write to one score database, so players share a leaderboard.
Without --host-key a key is generated at ~/.arcade/host_key on first start.

  arcade serve
  arcade serve --ssh :2222 --idle-timeout 10m
  arcade serve --host-key ./host_key --db ./scores.db

Then connect with: ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	f := serveCmd.Flags()
	f.StringVar(&flagSSHAddr, "ssh", def.Address, "listen address (host:port)")
	f.StringVar(&flagHostKey, "host-key", "", "host key file, generated when missing")
	f.DurationVar(&flagIdleTimeout, "idle-timeout", def.IdleTimeout, "disconnect sessions idle for this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("arcade-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.ConfigPath = flagConfig
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "arcade listening on %s (ctrl+c to stop)\n", server.Addr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
