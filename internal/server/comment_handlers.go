package server

import (
	"meublog/internal/models"
	"meublog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /post/:slug/comentarios
func (s *Server) GetComments(c *fiber.Ctx) error {
	pagination := parsePagination(c, 50)

	comments, err := s.commentService.GetPostComments(c.Context(), c.Params("slug"), pagination.Limit, pagination.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"comentarios": comments,
		"limit":       pagination.Limit,
		"offset":      pagination.Offset,
	})
}

// CreateComment handles POST /post/:slug/comentar
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		Conteudo string `json:"conteudo" form:"conteudo" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validateRequest(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:  currentUserID(c),
		Slug:    c.Params("slug"),
		Content: req.Conteudo,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT /comentario/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Conteudo string `json:"conteudo" form:"conteudo"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    currentUserID(c),
		CommentID: commentID,
		Content:   req.Conteudo,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /comentario/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	err = s.commentService.DeleteComment(c.Context(), service.DeleteCommentInput{
		UserID:    currentUserID(c),
		CommentID: commentID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
