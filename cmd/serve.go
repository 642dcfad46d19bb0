package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chartspec/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chart MCP server (stdio by default, HTTP with --http)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("http", "", "serve streamable HTTP on this address (e.g. :8080) instead of stdio")

	viper.SetEnvPrefix("chartspec")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("http", serveCmd.Flags().Lookup("http"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv := tools.NewServer()

	addr := viper.GetString("http")
	if addr == "" {
		// stdio mode: keep stdout clean for the JSON-RPC stream
		return server.ServeStdio(srv)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpSrv := server.NewStreamableHTTPServer(srv)
	go func() {
		<-ctx.Done()
		_ = httpSrv.Shutdown(context.Background())
	}()

	slog.Info("serving streamable HTTP", "addr", addr)
	if err := httpSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
