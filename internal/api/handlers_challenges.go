package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

func (handler *Handler) ListChallenges(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	board, err := handler.challengeService.Board(user.ID, c.QueryInt("count", services.DefaultChallengeDraw), handler.today())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load challenges")
	}
	return c.JSON(board)
}

func (handler *Handler) CompleteChallenge(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	challengeID, err := c.ParamsInt("id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid challenge id")
	}

	points, err := handler.challengeService.Complete(user.ID, challengeID, handler.today())
	switch {
	case errors.Is(err, services.ErrChallengeNotFound):
		return apiError(c, fiber.StatusNotFound, "challenge not found")
	case errors.Is(err, services.ErrChallengeAlreadyCompleted):
		return apiError(c, fiber.StatusConflict, "challenge already completed today")
	case err != nil:
		return handler.respondServiceError(c, err, "failed to complete challenge")
	}

	challenge, _ := services.FindChallenge(challengeID)
	return c.JSON(fiber.Map{"points": points, "awarded": challenge.Points, "challenge": challenge})
}
