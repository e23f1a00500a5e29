package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"recipehub/internal/auth"
	"recipehub/internal/config"
	"recipehub/internal/db"
	"recipehub/internal/dto"
	"recipehub/internal/logger"
	"recipehub/internal/repository"
	"recipehub/internal/service"
	"recipehub/internal/validation"
)

//go:embed sample.json
var sampleFixture []byte

// SeedUser is one fixture entry: a user and the recipes they author.
type SeedUser struct {
	dto.SignupRequest
	Recipes []dto.RecipeRequest `json:"recipes"`
}

func main() {
	file := flag.String("file", "", "JSON fixture to load (defaults to the embedded sample)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", false)
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel, cfg.LogPretty)
	log.Info().Msg("starting seed script")

	fixture, err := loadFixture(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("load fixture")
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	userRepo := repository.NewUserRepository(gormDB)
	recorder := service.NewActivityRecorder(repository.NewActivityLogRepository(gormDB), len(fixture)*4+1)
	defer recorder.Close()

	jwtService := auth.NewJWTServiceWithTTL(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	s := &seeder{
		users:    userRepo,
		userSvc:  service.NewUserService(userRepo, auth.NewBcryptHasher(), auth.NewTokenStore(nil), jwtService, recorder),
		recipes:  service.NewRecipeService(repository.NewRecipeRepository(gormDB), recorder, cfg.PageSize),
		validate: validation.New(),
	}

	created, skipped, recipes := s.run(context.Background(), fixture)
	log.Info().
		Int("users_created", created).
		Int("users_skipped", skipped).
		Int("recipes_created", recipes).
		Msg("seed completed")
}

func loadFixture(path string) ([]SeedUser, error) {
	data := sampleFixture
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		data = raw
	}

	var users []SeedUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return users, nil
}

type seeder struct {
	users    repository.UserRepository
	userSvc  service.UserService
	recipes  service.RecipeService
	validate *validation.Validator
}

// run signs up every fixture user and creates their recipes. Users that fail
// validation or already exist are skipped together with their recipes.
func (s *seeder) run(ctx context.Context, fixture []SeedUser) (created, skipped, recipes int) {
	for _, item := range fixture {
		if err := s.validate.Validate(&item.SignupRequest); err != nil {
			log.Warn().Err(err).Str("login_id", item.UserID).Msg("skipping invalid user")
			skipped++
			continue
		}

		resp, err := s.userSvc.Signup(ctx, item.SignupRequest)
		if err != nil {
			log.Error().Err(err).Str("login_id", item.UserID).Msg("signup failed")
			skipped++
			continue
		}
		if resp.StatusCode != http.StatusOK {
			log.Info().Str("login_id", item.UserID).Str("reason", resp.Message).Msg("skipping user")
			skipped++
			continue
		}
		created++

		author, err := s.users.FindByLoginID(ctx, item.UserID)
		if err != nil {
			log.Error().Err(err).Str("login_id", item.UserID).Msg("lookup seeded user")
			continue
		}
		for _, r := range item.Recipes {
			if err := s.validate.Validate(&r); err != nil {
				log.Warn().Err(err).Str("title", r.Title).Msg("skipping invalid recipe")
				continue
			}
			if _, err := s.recipes.Create(ctx, author, r); err != nil {
				log.Error().Err(err).Str("title", r.Title).Msg("create recipe")
				continue
			}
			recipes++
		}
	}
	return created, skipped, recipes
}
