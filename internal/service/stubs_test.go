package service

import (
	"context"
	"errors"
	"testing"

	"meublog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByUsernameFn     func(context.Context, string) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	createWithProfileFn func(context.Context, *models.User, *models.Profile) error
	updateFn            func(context.Context, *models.User) error
	deleteFn            func(context.Context, uint) error
	listFn              func(context.Context, int, int) ([]models.User, error)
	countFn             func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	return s.createWithProfileFn(ctx, user, profile)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:           func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:     func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByEmailFn:        func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createWithProfileFn: func(_ context.Context, _ *models.User, _ *models.Profile) error { return nil },
		updateFn:            func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:            func(_ context.Context, _ uint) error { return nil },
		listFn:              func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
		countFn:             func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn func(context.Context, uint) (*models.Profile, error)
	getByCPFFn    func(context.Context, string) (*models.Profile, error)
	updateFn      func(context.Context, *models.Profile) error
	setActiveFn   func(context.Context, uint, bool) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) GetByCPF(ctx context.Context, cpf string) (*models.Profile, error) {
	return s.getByCPFFn(ctx, cpf)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) SetActive(ctx context.Context, userID uint, active bool) error {
	return s.setActiveFn(ctx, userID, active)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(_ context.Context, _ uint) (*models.Profile, error) { return nil, nil },
		getByCPFFn:    func(_ context.Context, _ string) (*models.Profile, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Profile) error { return nil },
		setActiveFn:   func(_ context.Context, _ uint, _ bool) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn     func(context.Context, *models.Post) error
	getBySlugFn  func(context.Context, string, uint) (*models.Post, error)
	listFn       func(context.Context, *uint, int, int, uint) ([]*models.Post, error)
	listByUserFn func(context.Context, uint, int, int) ([]*models.Post, error)
	slugExistsFn func(context.Context, string) (bool, error)
	updateFn     func(context.Context, *models.Post) error
	deleteFn     func(context.Context, uint) error
	countFn      func(context.Context) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetBySlug(ctx context.Context, slug string, currentUserID uint) (*models.Post, error) {
	return s.getBySlugFn(ctx, slug, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, categoryID *uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, categoryID, limit, offset, currentUserID)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) SlugExists(ctx context.Context, slug string) (bool, error) {
	return s.slugExistsFn(ctx, slug)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:     func(_ context.Context, _ *models.Post) error { return nil },
		getBySlugFn:  func(_ context.Context, _ string, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn:       func(_ context.Context, _ *uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		listByUserFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		slugExistsFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
		updateFn:     func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		countFn:      func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint, int, int) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
	countFn      func(context.Context) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		countFn:      func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// reactionRepoStub is a stub for repository.ReactionRepository.
type reactionRepoStub struct {
	getByUserAndPostFn func(context.Context, uint, uint) (*models.Reaction, error)
	toggleFn           func(context.Context, uint, uint, string) (bool, error)
	countsByPostFn     func(context.Context, uint) (map[string]int64, int64, error)
	countFn            func(context.Context) (int64, error)
}

func (s *reactionRepoStub) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Reaction, error) {
	return s.getByUserAndPostFn(ctx, userID, postID)
}
func (s *reactionRepoStub) Toggle(ctx context.Context, userID, postID uint, kind string) (bool, error) {
	return s.toggleFn(ctx, userID, postID, kind)
}
func (s *reactionRepoStub) CountsByPost(ctx context.Context, postID uint) (map[string]int64, int64, error) {
	return s.countsByPostFn(ctx, postID)
}
func (s *reactionRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopReactionRepo() *reactionRepoStub {
	return &reactionRepoStub{
		getByUserAndPostFn: func(_ context.Context, _, _ uint) (*models.Reaction, error) { return nil, nil },
		toggleFn:           func(_ context.Context, _, _ uint, _ string) (bool, error) { return true, nil },
		countsByPostFn: func(_ context.Context, _ uint) (map[string]int64, int64, error) {
			return map[string]int64{}, 0, nil
		},
		countFn: func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	createFn         func(context.Context, *models.Category) error
	getByIDFn        func(context.Context, uint) (*models.Category, error)
	getByNameFn      func(context.Context, string) (*models.Category, error)
	listWithCountsFn func(context.Context) ([]models.Category, error)
	updateFn         func(context.Context, *models.Category) error
	deleteFn         func(context.Context, uint) error
	countFn          func(context.Context) (int64, error)
}

func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) GetByName(ctx context.Context, name string) (*models.Category, error) {
	return s.getByNameFn(ctx, name)
}
func (s *categoryRepoStub) ListWithCounts(ctx context.Context) ([]models.Category, error) {
	return s.listWithCountsFn(ctx)
}
func (s *categoryRepoStub) Update(ctx context.Context, category *models.Category) error {
	return s.updateFn(ctx, category)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *categoryRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn:         func(_ context.Context, _ *models.Category) error { return nil },
		getByIDFn:        func(_ context.Context, _ uint) (*models.Category, error) { return &models.Category{}, nil },
		getByNameFn:      func(_ context.Context, _ string) (*models.Category, error) { return nil, nil },
		listWithCountsFn: func(_ context.Context) ([]models.Category, error) { return nil, nil },
		updateFn:         func(_ context.Context, _ *models.Category) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		countFn:          func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}
