// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"meublog/internal/models"
	"meublog/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var categoryNames = []string{
	"Tecnologia", "Viagens", "Culinária", "Esportes", "Música",
	"Cinema", "Literatura", "Programação", "Fotografia", "Jogos",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	categories, err := createCategories(db)
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	log.Printf("%d categories available", len(categories))

	posts, err := createPosts(db, users, categories, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	if err := createComments(db, users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}

	if err := createReactions(db, users, posts); err != nil {
		return fmt.Errorf("failed to create reactions: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

// clearData removes all seedable rows. Order matters because of the FK chain.
func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.Reaction{}, &models.Comment{}, &models.Post{},
		&models.Category{}, &models.Profile{}, &models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, count int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123!!"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, count+1)

	// First user is a predictable admin for local development.
	admin := &models.User{
		Username: "admin",
		Email:    "admin@meublog.dev",
		Password: string(hashed),
	}
	adminProfile := &models.Profile{
		CPF:    GenerateCPF(),
		Role:   models.RoleAdmin,
		Active: true,
	}
	if err := createUserWithProfile(db, admin, adminProfile); err != nil {
		return nil, err
	}
	users = append(users, admin)

	for i := 0; i < count; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(hashed),
		}
		profile := &models.Profile{
			CPF:    GenerateCPF(),
			Role:   models.RoleComum,
			Active: rand.Intn(10) != 0, // roughly one in ten is deactivated
		}
		if err := createUserWithProfile(db, user, profile); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createUserWithProfile(db *gorm.DB, user *models.User, profile *models.Profile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func createCategories(db *gorm.DB) ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := &models.Category{Name: name}
		if err := db.Where(models.Category{Name: name}).FirstOrCreate(category).Error; err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func createPosts(db *gorm.DB, users []*models.User, categories []*models.Category, count int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		title := gofakeit.Sentence(gofakeit.Number(3, 8))
		post := &models.Post{
			UserID:  author.ID,
			Title:   title,
			Slug:    fmt.Sprintf("%s-%s", validation.Slugify(title), gofakeit.UUID()[:8]),
			Content: gofakeit.Paragraph(2, 4, 8, "\n\n"),
		}
		if rand.Intn(4) != 0 {
			post.CategoryID = &categories[rand.Intn(len(categories))].ID
		}

		// Realistic created_at spread over the past 90 days.
		daysBack := rand.Intn(90)
		post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(rand.Intn(24))*time.Hour)

		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createComments(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	total := 0
	for _, post := range posts {
		for i := 0; i < rand.Intn(6); i++ {
			commenter := users[rand.Intn(len(users))]
			comment := &models.Comment{
				PostID:  post.ID,
				UserID:  &commenter.ID,
				Content: gofakeit.Sentence(gofakeit.Number(5, 20)),
			}
			if err := db.Create(comment).Error; err != nil {
				return err
			}
			total++
		}
	}
	log.Printf("%d comments created", total)
	return nil
}

func createReactions(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	total := 0
	for _, post := range posts {
		// Each post gets reactions from a random subset of users. The
		// unique index on (user_id, post_id) is honored by sampling
		// users without replacement.
		perm := rand.Perm(len(users))
		n := rand.Intn(len(users)/2 + 1)
		for _, idx := range perm[:n] {
			reaction := &models.Reaction{
				UserID: users[idx].ID,
				PostID: post.ID,
				Kind:   models.ReactionKinds[rand.Intn(len(models.ReactionKinds))],
			}
			if err := db.Create(reaction).Error; err != nil {
				return err
			}
			total++
		}
	}
	log.Printf("%d reactions created", total)
	return nil
}

// GenerateCPF produces a random, check-digit-valid CPF.
func GenerateCPF() string {
	digits := make([]int, 11)
	for i := 0; i < 9; i++ {
		digits[i] = rand.Intn(10)
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		digits[9] = 0
	} else {
		digits[9] = 11 - rest
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	rest = sum % 11
	if rest < 2 {
		digits[10] = 0
	} else {
		digits[10] = 11 - rest
	}

	out := make([]byte, 11)
	for i, d := range digits {
		out[i] = byte('0' + d)
	}
	return string(out)
}
