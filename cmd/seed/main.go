// Copyright (c) 2026 Inkwell. All rights reserved.

// Command seed bulk-inserts sample blog posts for local development and
// manual testing. It is an administrative tool and never runs alongside
// live traffic.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run ./cmd/seed -count 10
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/inkwell-dev/inkwell/internal/platform/config"
	"github.com/inkwell-dev/inkwell/internal/platform/migration"
	pgstore "github.com/inkwell-dev/inkwell/internal/platform/postgres"
	"github.com/inkwell-dev/inkwell/internal/posts"
)

// Sample corpus the generated posts cycle through.
var (
	sampleAuthors = [][2]string{
		{"Jane", "Doe"},
		{"Arthur", "Clarke"},
		{"Ursula", "Le Guin"},
		{"Nnedi", "Okorafor"},
		{"Ted", "Chiang"},
	}
	sampleTitles = []string{
		"Notes from the Field",
		"On Keeping a Commonplace Book",
		"A Short History of Long Walks",
		"What the Tide Left Behind",
		"Letters to a Future Reader",
	}
)

func main() {
	count := flag.Int("count", 10, "number of sample posts to insert")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "inkwell-seed"))

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	// The schema must exist before seeding into it.
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	service := posts.NewService(posts.NewPostgresRepository(pool), log)

	records := make([]*posts.Post, 0, *count)
	for i := 0; i < *count; i++ {
		author := sampleAuthors[i%len(sampleAuthors)]
		records = append(records, &posts.Post{
			AuthorFirstName: author[0],
			AuthorLastName:  author[1],
			Title:           fmt.Sprintf("%s #%d", sampleTitles[i%len(sampleTitles)], i+1),
			Content:         fmt.Sprintf("Sample content for post %d, generated by cmd/seed.", i+1),
		})
	}

	must(log, service.InsertPosts(ctx, records), "insert posts")

	log.Info("seed_complete", slog.Int("count", len(records)))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("seed failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
