package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/novalabs/go-nova/pkg/assistant"
	"github.com/novalabs/go-nova/pkg/hub"
)

// ChatRequest is the body for POST /api/chat.
type ChatRequest struct {
	Text string `json:"text"`
}

// ChatResponse is one dispatched turn.
type ChatResponse struct {
	Response  string `json:"response"`
	Terminate bool   `json:"terminate"`
}

// handleChat runs one turn through the session.
func (s *Server) handleChat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, ok := s.session.Submit(c.Context(), req.Text)
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "session terminated",
		})
	}

	// Stream the two turns this exchange appended
	for _, turn := range s.session.Transcript().Recent(2) {
		s.convHub.BroadcastJSON(hub.TurnEvent{
			Event:     hub.EventTurn,
			ID:        turn.ID,
			Role:      string(turn.Role),
			Text:      turn.Text,
			Timestamp: turn.Timestamp,
		})
	}
	if result.Terminate {
		s.convHub.BroadcastJSON(hub.TurnEvent{Event: hub.EventTerminated})
	}

	return c.JSON(ChatResponse{Response: result.Text, Terminate: result.Terminate})
}

// handleConversation returns recent transcript turns, most recent last.
func (s *Server) handleConversation(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	turns := s.session.Transcript().Recent(limit)
	if turns == nil {
		turns = []assistant.Turn{}
	}
	return c.JSON(turns)
}

// handleClearConversation discards the transcript.
func (s *Server) handleClearConversation(c *fiber.Ctx) error {
	s.session.Transcript().Clear()
	s.convHub.BroadcastJSON(hub.TurnEvent{Event: hub.EventCleared})
	return c.JSON(fiber.Map{"status": "cleared"})
}

// handleStatus reports session and collaborator state.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"greeting":      s.session.Greeting(),
		"llm_available": s.session.LLMAvailable(),
		"terminated":    s.session.Terminated(),
		"turns":         s.session.Transcript().Len(),
		"ws_clients":    s.convHub.ClientCount(),
		"time":          time.Now().Format("03:04 PM"),
	})
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleConversationWS streams transcript events to a websocket client.
func (s *Server) handleConversationWS(conn *websocket.Conn) {
	client := hub.NewClient(s.convHub, conn)
	client.Run()
}
