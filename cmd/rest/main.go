package main

import (
	"context"
	"log"

	"course-portal-be/internal/bootstrap"
	"course-portal-be/internal/config"
	"course-portal-be/internal/server"
	"course-portal-be/internal/tracer"
	"course-portal-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background workers: the durable change feed pushes progress updates to
	// websocket clients, the watcher keeps the admin stats snapshot warm.
	if container.FeedService != nil {
		if err := container.FeedService.Start(); err != nil {
			log.Printf("Background Feed Error: %v", err)
		}
	}
	if err := container.StatsWatcher.Start(context.Background()); err != nil {
		log.Printf("Background Stats Watcher Error: %v", err)
	}

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
