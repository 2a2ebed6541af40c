package main

import (
	"log"
	"os"
	"time"

	"stylesnapapi/controllers"
	"stylesnapapi/dbhelper"
	"stylesnapapi/services"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET environment variable is not set!")
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("SENTRY_DSN"),
		Environment: services.GetEnv("ENV", "local"),
		Release:     "stylesnapapi@1.0.0",
		Debug:       false,
		// lower this once traffic picks up
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	db := dbhelper.SetupDB()

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")})
	defer asynqClient.Close()

	bucketName := services.GetEnv("R2_BUCKET_NAME", "")
	awsService := &services.AWSService{}
	urlCache, err := services.NewImageURLCache(awsService, bucketName)
	if err != nil {
		log.Fatalf("Failed to initialize URL cache service: %v", err)
	}

	e := controllers.SetupServer(
		&services.UserService{DB: db},
		&services.ClosetService{DB: db},
		&services.OutfitHistoryService{DB: db},
		awsService,
		urlCache,
		asynqClient,
	)
	e.Debug = services.GetEnv("ENV", "local") == "local"
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(3)))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	e.Logger.Fatal(e.Start(":" + services.GetEnv("PORT", "8083")))
}
