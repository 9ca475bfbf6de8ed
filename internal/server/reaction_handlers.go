package server

import (
	"errors"

	"meublog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleReaction handles POST /post/:slug/curtir.  The request carries a
// "tipo_reacao" field and the response follows the original wire contract
// with Portuguese keys.
func (s *Server) ToggleReaction(c *fiber.Ctx) error {
	var req struct {
		TipoReacao string `json:"tipo_reacao" form:"tipo_reacao"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"sucesso": false,
			"erro":    "Invalid request body",
		})
	}

	result, err := s.reactionService.Toggle(c.Context(), currentUserID(c), c.Params("slug"), req.TipoReacao)
	if err != nil {
		status := fiber.StatusInternalServerError
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			switch appErr.Code {
			case "VALIDATION_ERROR":
				status = fiber.StatusBadRequest
			case "NOT_FOUND":
				status = fiber.StatusNotFound
			}
		}
		return c.Status(status).JSON(fiber.Map{
			"sucesso": false,
			"erro":    err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"sucesso":           true,
		"reacao_adicionada": result.Added,
		"tipo_reacao":       result.Kind,
		"reacoes":           result.Counts,
		"total_reacoes":     result.Total,
	})
}

// GetReactions handles GET /post/:slug/reacoes
func (s *Server) GetReactions(c *fiber.Ctx) error {
	counts, total, err := s.reactionService.Counts(c.Context(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"reacoes":       counts,
		"total_reacoes": total,
	})
}
