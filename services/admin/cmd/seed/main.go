package main

import (
	"errors"
	"log"
	"os"

	"storysprout/pkg/config"
	"storysprout/pkg/database"
	"storysprout/services/admin/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errMissingPassword = errors.New("ADMIN_PASSWORD must be set to create the initial admin user")

// Seeds the initial admin account and a handful of demo content rows so a
// fresh environment has something to browse. Safe to re-run, existing rows
// are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seedAdminUser(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seedContent(db); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	log.Println("Seed completed")
}

func seedAdminUser(db *gorm.DB) error {
	username := getEnv("ADMIN_USERNAME", "admin")

	var count int64
	if err := db.Model(&model.AdminUserModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Admin user %q already exists, skipping", username)
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return errMissingPassword
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.AdminUserModel{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         "admin",
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	questions := []struct {
		question string
		envKey   string
	}{
		{"What was the name of your first pet?", "ADMIN_RECOVERY_ANSWER_1"},
		{"What city were you born in?", "ADMIN_RECOVERY_ANSWER_2"},
		{"What was your childhood nickname?", "ADMIN_RECOVERY_ANSWER_3"},
	}

	for i, q := range questions {
		answer := os.Getenv(q.envKey)
		if answer == "" {
			log.Printf("%s not set, skipping recovery question %d", q.envKey, i+1)
			continue
		}

		answerHash, err := bcrypt.GenerateFromPassword([]byte(answer), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		entry := &model.RecoveryAnswerModel{
			ID:         uuid.New().String(),
			UserID:     user.ID,
			Question:   q.question,
			AnswerHash: string(answerHash),
			Position:   i + 1,
		}
		if err := db.Create(entry).Error; err != nil {
			return err
		}
	}

	log.Printf("Created admin user %q", username)
	return nil
}

func seedContent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.StoryModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Content already present, skipping demo rows")
		return nil
	}

	stories := []model.StoryModel{
		{
			ID:          uuid.New().String(),
			Title:       "The Sleepy Cloud",
			Description: "A little cloud learns how rain helps the flowers grow.",
			AgeGroup:    "0-3",
			Language:    "en",
			Featured:    true,
		},
		{
			ID:          uuid.New().String(),
			Title:       "Mila and the Moon Garden",
			Description: "Mila plants seeds that only bloom at night.",
			AgeGroup:    "3-6",
			Language:    "en",
		},
		{
			ID:                  uuid.New().String(),
			Title:               "Robo Learns to Loop",
			Description:         "A friendly robot discovers how repeating steps saves the day.",
			AgeGroup:            "6-9",
			Language:            "en",
			IsCodeStory:         true,
			ProgrammingLanguage: "scratch",
		},
	}
	for i := range stories {
		if err := db.Create(&stories[i]).Error; err != nil {
			return err
		}
	}

	videos := []model.VideoModel{
		{
			ID:          uuid.New().String(),
			Title:       "Counting with Crayons",
			Description: "Count to ten with a box of singing crayons.",
			AgeGroup:    "3-6",
			Language:    "en",
			Featured:    true,
		},
		{
			ID:                  uuid.New().String(),
			Title:               "My First Web Page",
			Description:         "Build a page about your favorite animal.",
			AgeGroup:            "9-12",
			Language:            "en",
			IsCodeVideo:         true,
			ProgrammingLanguage: "html",
		},
	}
	for i := range videos {
		if err := db.Create(&videos[i]).Error; err != nil {
			return err
		}
	}

	trending := model.TrendingStoryModel{
		ID:          uuid.New().String(),
		StoryID:     stories[0].ID,
		Title:       stories[0].Title,
		Description: stories[0].Description,
		AgeGroup:    stories[0].AgeGroup,
		Categories:  model.CategoryList{"bedtime"},
		Views:       120,
		Likes:       34,
		Priority:    5,
		IsActive:    true,
		Language:    "en",
	}
	if err := db.Create(&trending).Error; err != nil {
		return err
	}

	log.Println("Created demo content")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
