package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/lumina/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [image]",
	Short: "Open the terminal studio, optionally with a room photo",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	svc, err := bootstrap(ctx, cfg, logOut)
	if err != nil {
		return err
	}

	snap, err := svc.CreateSession(ctx)
	if err != nil {
		return err
	}
	controller, err := svc.Controller(snap.ID)
	if err != nil {
		return err
	}

	var initialImage string
	if len(args) == 1 {
		initialImage = args[0]
	}
	return tui.Run(ctx, controller, svc.Styles(), initialImage)
}
