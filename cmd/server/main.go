package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"places_backend/internal/app/di"
	"places_backend/internal/app/router"
	placeshandler "places_backend/internal/feature/places/transport/handler"
	placesusecase "places_backend/internal/feature/places/usecase"
	usersadapters "places_backend/internal/feature/users/adapters"
	usershandler "places_backend/internal/feature/users/transport/handler"
	usersusecase "places_backend/internal/feature/users/usecase"
	infradb "places_backend/internal/platform/db"
	"places_backend/internal/platform/hash"
	jwtmw "places_backend/internal/platform/jwt"
	infraredis "places_backend/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := usersadapters.NewUserPostgres(db)
	placeRepo := di.NewPlaceRepository(rdb, db)

	// Platform
	tokenGen := jwtmw.NewGenerator(secret, time.Hour)
	hasher := hash.NewBcryptHasher(hash.DefaultCost)

	// Usecase
	usersUC := usersusecase.NewUsersUsecase(userRepo, tokenGen, hasher)
	placesUC := placesusecase.NewPlacesUsecase(placeRepo, userRepo)

	// Handler
	usersH := usershandler.NewUsersHandler(usersUC)
	placesH := placeshandler.NewPlacesHandler(placesUC)

	// ルータ生成
	router := router.NewRouter(usersH, placesH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
