package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/novalabs/go-nova/pkg/assistant"
	"github.com/novalabs/go-nova/pkg/web"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat API over HTTP",
	Long: `Expose one assistant session over HTTP: POST /api/chat for turns,
GET /api/conversation for the transcript, and /ws/conversation for live
updates.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (default NOVA_PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := cfg.Port
	if servePort != "" {
		port = servePort
	}

	session := assistant.NewSession(buildDispatcher(cfg))
	server := web.NewServer(session, port)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		server.Shutdown()
	}()

	// Listen returns nil after a graceful Shutdown.
	return server.Start()
}
