// Seed a demo account for local development.
//
// Creates demo@skillbridge.dev with a profile and a few skills so the
// dashboard and analysis endpoints have data to work with.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"errors"
	"log"

	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/database"
	"skillbridge_backend/pkg/logger"
)

const (
	demoEmail    = "demo@skillbridge.dev"
	demoPassword = "DemoPass1"
	demoName     = "Demo Student"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	users := repository.NewUserRepository(db)
	records := repository.NewRecordRepository(db)
	auth := service.NewAuthService(users, records, nil, cfg)

	if _, err := auth.Signup(demoEmail, demoPassword, demoName); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			log.Printf("demo user %s already exists", demoEmail)
		} else {
			log.Fatalf("failed to create demo user: %v", err)
		}
	} else {
		log.Printf("created demo user %s (password %s)", demoEmail, demoPassword)
	}

	profiles := service.NewProfileService(records)
	if _, err := profiles.Setup(demoEmail, model.Profile{
		College:        "Demo Institute of Technology",
		Branch:         "Computer Science",
		Year:           "3rd Year",
		CareerInterest: "Backend Developer",
		TargetCompany:  "Any product company",
		Bio:            "Seeded demo account.",
	}); err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}

	skills := []model.Skill{
		{Name: "Python", Level: model.LevelAdvanced, Category: "Backend"},
		{Name: "SQL", Level: model.LevelIntermediate, Category: "Backend"},
		{Name: "Docker", Level: model.LevelBeginner, Category: "DevOps"},
		{Name: "Git", Level: model.LevelIntermediate, Category: "Tooling"},
	}
	if err := records.Merge(demoEmail, repository.FieldSkills, skills); err != nil {
		log.Fatalf("failed to seed skills: %v", err)
	}

	log.Println("demo data seeded")
}
