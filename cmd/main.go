package main

import (
	"log"

	"github.com/atelier-arts/atelier-e-commerce-backend/cmd/server"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/auth"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/cache"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/config"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/storage"
)

var (
	srvAddr                 = config.Env.ServerAddr
	postgresConnStr         = config.Env.PostgresConnStr
	redisAddr               = config.Env.RedisAddr
	accessTokenSecret       = config.Env.AccessTokenSecret
	accessTokenExpiryInSecs = config.Env.AccessTokenExpiryInSecs
)

func main() {
	log.SetFlags(log.Ldate | log.Llongfile)

	db, err := storage.NewPostgresDB(postgresConnStr)
	if err != nil {
		log.Fatal(err)
	}

	// the catalog runs without a snapshot cache when no redis is configured
	var redisClient *cache.RedisClient
	if redisAddr != "" {
		redisClient, err = cache.NewRedisClient(redisAddr)
		if err != nil {
			log.Fatal(err)
		}
	}

	srv := server.NewServer(&server.ServerConfig{
		Addr:  srvAddr,
		DB:    db,
		Cache: redisClient,
		TokenManager: auth.NewTokenService(
			accessTokenSecret,
			accessTokenExpiryInSecs,
		),
	},
	)
	srv.Run()
}
