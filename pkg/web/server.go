// Package web exposes one assistant session over HTTP and websocket.
package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/novalabs/go-nova/pkg/assistant"
	"github.com/novalabs/go-nova/pkg/hub"
)

// defaultHistoryLimit caps how many turns the conversation endpoint returns
// when the caller does not ask for a specific window.
const defaultHistoryLimit = 10

// Server serves the chat API and streams transcript updates.
type Server struct {
	app     *fiber.App
	port    string
	session *assistant.Session
	convHub *hub.Hub
	logger  *slog.Logger
}

// NewServer creates a server around the given session.
func NewServer(session *assistant.Session, port string) *Server {
	s := &Server{
		port:    port,
		session: session,
		convHub: hub.New("conversation"),
		logger:  slog.Default().With("component", "web.server"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Nova",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Post("/chat", s.handleChat)
	api.Get("/conversation", s.handleConversation)
	api.Delete("/conversation", s.handleClearConversation)
	api.Get("/status", s.handleStatus)
	api.Get("/health", s.handleHealth)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/conversation", websocket.New(s.handleConversationWS))

	s.app = app
	return s
}

// Start runs the hub and listens on the configured port. It blocks.
func (s *Server) Start() error {
	go s.convHub.Run()
	s.logger.Info("listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			s.logger.Error("server stopped", "error", err)
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
