package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"edactl/internal/system"
	"edactl/internal/webui/server"
)

func init() {
	rootCmd.AddCommand(guiCmd)
	guiCmd.Flags().StringP("addr", "a", server.DefaultAddr, "address to bind (host:port)")
	guiCmd.Flags().Bool("no-open", false, "do not open the browser")
}

var guiCmd = &cobra.Command{
	Use:     "gui",
	Aliases: []string{"webui"},
	Short:   "Start the local web GUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")
		noOpen, _ := cmd.Flags().GetBool("no-open")
		srv := &server.Server{Addr: addr, App: a}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		url := fmt.Sprintf("http://%s/", addr)
		system.Logger.Info("starting gui", "url", url)
		if !noOpen {
			if err := server.OpenBrowser(url); err != nil {
				system.Logger.Warn("failed to open browser", "err", err)
			}
		}
		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		return nil
	},
}
