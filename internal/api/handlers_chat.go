package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

type chatMessageInput struct {
	Message string `json:"message"`
}

func (handler *Handler) StartChat(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, err := handler.chatService.Start(c.UserContext(), user.ID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to start chat")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (handler *Handler) GetChat(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, err := handler.chatService.Get(c.UserContext(), user.ID, c.Params("id"))
	if errors.Is(err, services.ErrChatSessionNotFound) {
		return apiError(c, fiber.StatusNotFound, "chat session not found")
	}
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load chat")
	}
	return c.JSON(session)
}

func (handler *Handler) SendChatMessage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input chatMessageInput
	if err := parseJSON(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	session, reply, err := handler.chatService.Send(c.UserContext(), user.ID, c.Params("id"), input.Message)
	switch {
	case errors.Is(err, services.ErrChatSessionNotFound):
		return apiError(c, fiber.StatusNotFound, "chat session not found")
	case errors.Is(err, services.ErrChatSessionBusy):
		return apiError(c, fiber.StatusConflict, "a reply is already in progress")
	case err != nil:
		return handler.respondServiceError(c, err, "failed to send message")
	}

	return c.JSON(fiber.Map{
		"answer":  reply.Answer,
		"source":  reply.Source,
		"session": session,
	})
}
