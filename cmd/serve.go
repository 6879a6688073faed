package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epishuffle/epishuffle/key"
	"github.com/epishuffle/epishuffle/provider"
	"github.com/epishuffle/epishuffle/server"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

// addServeFlags registers the listener flags on both the root and the serve command.
func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("address", "a", "", "Address to listen on (default from config: server.address)")
	cmd.Flags().Bool("skip-invalid", false, "Skip malformed or duplicate show definitions")
}

func init() {
	addServeFlags(serveCmd)
}

func bindServeFlags(cmd *cobra.Command) {
	lo.Must0(viper.BindPFlag(key.ServerAddress, cmd.Flags().Lookup("address")))
	lo.Must0(viper.BindPFlag(key.CatalogSkipInvalid, cmd.Flags().Lookup("skip-invalid")))
}

// serveCmd loads the catalog once and serves it until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the random episode page and JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		bindServeFlags(cmd)

		c, err := provider.Load()
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(c, server.Options{
			Address:           viper.GetString(key.ServerAddress),
			ReadHeaderTimeout: time.Duration(viper.GetInt(key.ServerReadHeaderTimeout)) * time.Second,
			ShutdownTimeout:   time.Duration(viper.GetInt(key.ServerShutdownTimeout)) * time.Second,
			Metrics:           viper.GetBool(key.ServerMetrics),
		})

		cmd.Printf("Serving %d shows on %s\n", c.Len(), viper.GetString(key.ServerAddress))
		handleErr(srv.Run(ctx))
	},
}
