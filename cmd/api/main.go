// @title HabitFlow API
// @description Habit-tracking API: daily completion marks with per-user ownership
// @schemes http
package main

import (
	"log"

	"github.com/limerock/habitflow/internal/api"
	"github.com/limerock/habitflow/internal/repository"
	"github.com/limerock/habitflow/internal/service"
	"github.com/limerock/habitflow/pkg/cleanup"
	"github.com/limerock/habitflow/pkg/config"
	jwtservice "github.com/limerock/habitflow/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	progressRepo := repository.NewProgressRepo(&dbCfg)
	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(repository.NewUsersRepo(&dbCfg)),
		HabitsService:   service.NewHabitsService(habitsRepo, progressRepo),
		ProgressService: service.NewProgressService(habitsRepo, progressRepo),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetStringOrDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
