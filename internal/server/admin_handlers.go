package server

import (
	"meublog/internal/models"
	"meublog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /categorias.  Public, used by the feed filter.
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryService.ListCategories(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"categorias": categories})
}

// AdminDashboard handles GET /painel-admin and returns site-wide counters.
func (s *Server) AdminDashboard(c *fiber.Ctx) error {
	counts, err := s.userService.Dashboard(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(counts)
}

// AdminListPosts handles GET /admin/posts
func (s *Server) AdminListPosts(c *fiber.Ctx) error {
	pagination := parsePagination(c, 50)

	posts, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts":  posts,
		"limit":  pagination.Limit,
		"offset": pagination.Offset,
	})
}

// AdminListUsers handles GET /admin/usuarios
func (s *Server) AdminListUsers(c *fiber.Ctx) error {
	pagination := parsePagination(c, 50)

	users, err := s.userService.ListUsers(c.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"usuarios": users,
		"limit":    pagination.Limit,
		"offset":   pagination.Offset,
	})
}

// ActivateUser handles POST /usuario/:id/ativar
func (s *Server) ActivateUser(c *fiber.Ctx) error {
	return s.setUserActive(c, true)
}

// DeactivateUser handles POST /usuario/:id/desativar
func (s *Server) DeactivateUser(c *fiber.Ctx) error {
	return s.setUserActive(c, false)
}

func (s *Server) setUserActive(c *fiber.Ctx, active bool) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.SetUserActive(c.Context(), currentUserID(c), targetID, active); err != nil {
		return respondServiceError(c, err)
	}

	message := "User deactivated"
	if active {
		message = "User activated"
	}
	return c.JSON(fiber.Map{"message": message})
}

// CreateCategory handles POST /admin/categorias
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Nome string `json:"nome" form:"nome"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryService.CreateCategory(c.Context(), req.Nome)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory handles PUT /admin/categorias/:id
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Nome string `json:"nome" form:"nome"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryService.UpdateCategory(c.Context(), categoryID, req.Nome)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(category)
}

// DeleteCategory handles DELETE /admin/categorias/:id
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.categoryService.DeleteCategory(c.Context(), categoryID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Category deleted"})
}
