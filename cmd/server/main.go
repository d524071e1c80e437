package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recomovi/recomovi/internal/cache"
	"github.com/recomovi/recomovi/internal/config"
	"github.com/recomovi/recomovi/internal/corpus"
	"github.com/recomovi/recomovi/internal/domain"
	"github.com/recomovi/recomovi/internal/feature"
	"github.com/recomovi/recomovi/internal/handler"
	"github.com/recomovi/recomovi/internal/omdb"
	"github.com/recomovi/recomovi/internal/repository"
	"github.com/recomovi/recomovi/internal/router"
	"github.com/recomovi/recomovi/internal/scraper"
	"github.com/recomovi/recomovi/internal/service"
	"github.com/recomovi/recomovi/seeds"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	ctx := context.Background()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to parse database config %v", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("failed to connect to database %v", err)
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool); err != nil {
		log.Fatalf("database not ready: %v", err)
	}
	log.Println("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrateDown(ctx, pool); err != nil {
			log.Fatalf("failed to migrate down %v", err)
		}
		log.Println("migrations dropped")
		return
	}

	if err := migrateUp(ctx, pool); err != nil {
		log.Fatalf("failed to migrate up %v", err)
	}

	// ------------ Seed Default Dataset ---------------
	repo := repository.New(pool)
	if err := checkSeed(ctx, pool, repo, cfg.DefaultDataset); err != nil {
		log.Fatalf("failed to check seed %v", err)
	}

	// ------------ Build Corpora ---------------
	// The default corpus is mandatory: without it no recommendation can be
	// served, so any failure here is fatal.
	weights := feature.DefaultWeights()
	store, err := buildCorpora(ctx, repo, weights)
	if err != nil {
		log.Fatalf("default dataset failed to load: %v", err)
	}

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to parse redis config %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	recCache := cache.NewCache(redisClient, cfg.CacheTTL)
	if err := recCache.Ping(ctx); err != nil {
		log.Printf("redis not reachable, recommendations will not be cached: %v", err)
	} else {
		log.Println("connected to Redis")
	}

	// ---------------- Server --------------------
	svc := service.New(store, repo, recCache,
		scraper.New(cfg.ScrapeConcurrency),
		omdb.NewClient(cfg.OMDBAPIKey, cfg.OMDBAPIURL),
		weights)
	h := handler.NewHandler(svc)

	log.Printf("Server running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), router.Setup(h)))
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Printf("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations dropped successfully")
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations applied successfully")
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool, repo *repository.Repository, datasetPath string) error {
	count, err := repo.CountRecords(ctx, domain.CorpusDefault)
	if err != nil {
		return fmt.Errorf("check default records count: %w", err)
	}
	if count > 0 {
		log.Printf("database already seeded (%d default records), skipping", count)
		return nil
	}
	return seeds.Setup(ctx, pool, datasetPath)
}

// buildCorpora runs the recommendation pipeline over the persisted records:
// always the default corpus, plus the custom corpus when a previous scrape
// left one behind.
func buildCorpora(ctx context.Context, repo *repository.Repository, weights feature.Weights) (*corpus.Store, error) {
	records, err := repo.LoadRecords(ctx, domain.CorpusDefault)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no default records in database")
	}

	def := corpus.Build(records, weights)
	log.Printf("default corpus built with %d movies", def.Size())

	// Keep the persisted bag-of-words table in sync with the build.
	if err := repo.SaveBags(ctx, domain.CorpusDefault, def.Bags); err != nil {
		return nil, fmt.Errorf("save default bagofwords: %w", err)
	}

	store := corpus.NewStore(def)

	customRecords, err := repo.LoadRecords(ctx, domain.CorpusCustom)
	if err != nil {
		return nil, err
	}
	if len(customRecords) > 0 {
		custom := corpus.Build(customRecords, weights)
		store.SetCustom(custom)
		log.Printf("custom corpus restored with %d movies", custom.Size())
	}

	return store, nil
}
