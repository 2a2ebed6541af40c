package main

import (
	"context"
	"log"
	"os"
	"time"

	"stylesnapapi/dbhelper"
	"stylesnapapi/services"
	"stylesnapapi/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
)

func runScheduler() {
	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")}, &asynq.SchedulerOpts{
		LogLevel: asynq.InfoLevel,
	})

	scheduled := []struct {
		cron string
		task *asynq.Task
		desc string
	}{
		{
			cron: services.GetEnv("DAILY_OUTFIT_CRON", "0 7 * * *"),
			task: tasks.NewDailyOutfitTask(),
			desc: "Daily outfit suggestions",
		},
	}

	for _, t := range scheduled {
		entryID, err := scheduler.Register(t.cron, t.task, asynq.Queue(tasks.QueueGenerate), asynq.MaxRetry(1))
		if err != nil {
			log.Fatalf("Failed to register task '%s': %v", t.desc, err)
		}
		log.Printf("Registered task '%s' with ID: %s, cron: %s", t.desc, entryID, t.cron)
	}

	log.Println("Starting scheduler...")
	if err := scheduler.Run(); err != nil {
		log.Fatalf("Scheduler failed: %v", err)
	}
}

func main() {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("SENTRY_DSN"),
		Environment: services.GetEnv("ENV", "local"),
		Release:     "stylesnapworker@1.0.0",
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Flush(2 * time.Second)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")},
		asynq.Config{Concurrency: services.GetEnvInt("WORKER_CONCURRENCY", 10), Queues: map[string]int{
			tasks.QueueGenerate: 7,
		}},
	)

	db := dbhelper.SetupDB()
	users := &services.UserService{DB: db}
	outfits := services.NewOutfitService(&services.ClosetService{DB: db}, &services.OutfitHistoryService{DB: db})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeGenerateOutfit, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleOutfitGenerationTask(ctx, t, outfits)
	})
	mux.HandleFunc(tasks.TypeDailyOutfit, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleDailyOutfitTask(ctx, t, users, outfits)
	})

	go runScheduler()
	if err := srv.Run(mux); err != nil {
		log.Fatal(err)
	}
}
