package http

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"chat-core/services"
	"chat-core/session"
)

// Server exposes the chat service over HTTP. Every route except the session
// endpoint requires a bearer token resolved through the session store.
type Server struct {
	app      *fiber.App
	chat     services.IChatService
	sessions session.IStore
	log      *slog.Logger
}

func NewServer(chat services.IChatService, sessions session.IStore, log *slog.Logger) *Server {
	s := &Server{
		app:      fiber.New(fiber.Config{DisableStartupMessage: true}),
		chat:     chat,
		sessions: sessions,
		log:      log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")
	api.Post("/session", s.openSession)

	authed := api.Group("", s.requireBearer)
	authed.Post("/rooms/direct", s.createDirectRoom)
	authed.Post("/rooms/group", s.createGroupRoom)
	authed.Get("/rooms", s.listRooms)
	authed.Post("/rooms/:id/leave", s.leaveRoom)
	authed.Post("/rooms/:id/messages", s.sendMessage)
	authed.Get("/rooms/:id/messages", s.listMessages)
	authed.Get("/rooms/:id/search", s.searchMessages)
	authed.Get("/rooms/:id/online", s.onlineUsers)
	authed.Post("/messages/read", s.markRead)
	authed.Get("/unread", s.unreadCount)
}

// requireBearer resolves the Authorization header into a session and stores
// it in the request context for the service layer.
func (s *Server) requireBearer(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}

	userID, ok, err := s.sessions.Resolve(c.UserContext(), token)
	if err != nil {
		s.log.Error("Failed to resolve session", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session lookup failed"})
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	ctx := session.WithSession(c.UserContext(), session.Session{UserID: userID})
	c.SetUserContext(ctx)
	return c.Next()
}

func (s *Server) Listen(addr string) error {
	s.log.Info("Starting HTTP server", "address", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}
