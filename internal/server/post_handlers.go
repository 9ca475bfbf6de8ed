package server

import (
	"os"
	"path/filepath"

	"meublog/internal/models"
	"meublog/internal/service"
	"meublog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetFeed handles GET / and returns the public post feed, optionally
// filtered by the "categoria" query parameter, along with the category
// list used by the sidebar filter.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	pagination := parsePagination(c, 20)
	userID, _ := s.optionalUserID(c)

	posts, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Categoria:     c.Query("categoria"),
		Limit:         pagination.Limit,
		Offset:        pagination.Offset,
		CurrentUserID: userID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	categories, err := s.categoryService.ListCategories(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	total, err := s.postRepo.Count(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts":      posts,
		"categorias": categories,
		"total":      total,
		"limit":      pagination.Limit,
		"offset":     pagination.Offset,
	})
}

// GetPost handles GET /post/:slug and bundles the post with its comments
// and reaction breakdown, the way the detail page renders it.
func (s *Server) GetPost(c *fiber.Ctx) error {
	userID, _ := s.optionalUserID(c)
	slug := c.Params("slug")

	post, err := s.postService.GetPost(c.Context(), slug, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	pagination := parsePagination(c, 50)
	comments, err := s.commentService.GetPostComments(c.Context(), slug, pagination.Limit, pagination.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	counts, total, err := s.reactionService.Counts(c.Context(), slug)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":          post,
		"comentarios":   comments,
		"reacoes":       counts,
		"total_reacoes": total,
	})
}

// CreatePost handles POST /post/novo.  Accepts JSON or multipart form
// with an optional "imagem" file upload.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Titulo      string `json:"titulo" form:"titulo" validate:"required"`
		Conteudo    string `json:"conteudo" form:"conteudo" validate:"required"`
		CategoriaID *uint  `json:"categoria_id" form:"categoria_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validateRequest(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	imagePath, err := s.saveUploadedImage(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:     currentUserID(c),
		Title:      req.Titulo,
		Content:    req.Conteudo,
		ImagePath:  imagePath,
		CategoryID: req.CategoriaID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /post/:slug
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var req struct {
		Titulo      string `json:"titulo" form:"titulo"`
		Conteudo    string `json:"conteudo" form:"conteudo"`
		CategoriaID *uint  `json:"categoria_id" form:"categoria_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	imagePath, err := s.saveUploadedImage(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:     currentUserID(c),
		Slug:       c.Params("slug"),
		Title:      req.Titulo,
		Content:    req.Conteudo,
		ImagePath:  imagePath,
		CategoryID: req.CategoriaID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /post/:slug
func (s *Server) DeletePost(c *fiber.Ctx) error {
	err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: currentUserID(c),
		Slug:   c.Params("slug"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// saveUploadedImage stores the optional "imagem" multipart file under the
// media directory and returns its public path.  Returns "" when no file
// was uploaded.
func (s *Server) saveUploadedImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("imagem")
	if err != nil {
		// No file field present; image is optional.
		return "", nil
	}

	ext, err := validation.ValidateImageFilename(file.Filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.config.MediaDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(s.config.MediaDir, name)); err != nil {
		return "", err
	}

	return "/media/posts/" + name, nil
}
