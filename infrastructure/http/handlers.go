package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"chat-core/domain"
	cerrors "chat-core/errors"
)

type openSessionRequest struct {
	UserID string `json:"userId"`
}

// openSession trades a user id for a bearer token. There is no credential
// check here; authentication proper belongs to an upstream identity service.
func (s *Server) openSession(c *fiber.Ctx) error {
	var body openSessionRequest
	if err := c.BodyParser(&body); err != nil || body.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	token, err := s.sessions.Issue(c.UserContext(), body.UserID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

type createDirectRoomRequest struct {
	OtherID string `json:"otherId"`
}

func (s *Server) createDirectRoom(c *fiber.Ctx) error {
	var body createDirectRoomRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	room, err := s.chat.CreateDirectRoom(c.UserContext(), body.OtherID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

type createGroupRoomRequest struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds"`
}

func (s *Server) createGroupRoom(c *fiber.Ctx) error {
	var body createGroupRoomRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	room, err := s.chat.CreateGroupRoom(c.UserContext(), body.Name, body.MemberIDs)
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

func (s *Server) listRooms(c *fiber.Ctx) error {
	rooms, err := s.chat.ListRooms(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(rooms)
}

func (s *Server) leaveRoom(c *fiber.Ctx) error {
	if err := s.chat.LeaveRoom(c.UserContext(), c.Params("id")); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type sendMessageRequest struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

func (s *Server) sendMessage(c *fiber.Ctx) error {
	var body sendMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	msg, err := s.chat.SendMessage(c.UserContext(), c.Params("id"), body.Content, domain.MessageType(body.Type))
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

func (s *Server) listMessages(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	msgs, err := s.chat.ListMessages(c.UserContext(), c.Params("id"), limit)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(msgs)
}

func (s *Server) searchMessages(c *fiber.Ctx) error {
	msgs, err := s.chat.SearchMessages(c.UserContext(), c.Params("id"), c.Query("q"), c.QueryInt("limit"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(msgs)
}

func (s *Server) onlineUsers(c *fiber.Ctx) error {
	users, err := s.chat.OnlineUsers(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

type markReadRequest struct {
	MessageIDs []string `json:"messageIds"`
}

func (s *Server) markRead(c *fiber.Ctx) error {
	var body markReadRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	if err := s.chat.MarkRead(c.UserContext(), body.MessageIDs); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) unreadCount(c *fiber.Ctx) error {
	count, err := s.chat.UnreadCount(c.UserContext(), c.Query("roomId"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// fail maps service errors onto HTTP statuses.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, cerrors.ErrNotAuthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, cerrors.ErrInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, cerrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		s.log.Error("Unhandled service error", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
