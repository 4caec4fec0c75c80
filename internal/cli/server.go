package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ethics-quiz-service/internal/app"
	"ethics-quiz-service/internal/config"
	"ethics-quiz-service/internal/infra/memory"
	pgcatalog "ethics-quiz-service/internal/infra/postgres"
	redisinfra "ethics-quiz-service/internal/infra/redis"
	transport "ethics-quiz-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(memory.DefaultCatalog())
	if pool != nil {
		loader = pgcatalog.NewCatalogLoader(pool)
	}

	catalogTTL := config.Duration(cfg.Catalog.TTL, 10*time.Minute)
	var bank app.QuestionBank
	if redisClient != nil {
		bank = redisinfra.NewQuestionBank(redisClient, loader, catalogTTL)
	} else {
		bank = memory.NewQuestionBank(loader, catalogTTL)
	}

	var fameStore app.FameStore
	if redisClient != nil {
		fameStore = redisinfra.NewFameStore(redisClient)
	} else {
		fameStore = memory.NewFameStore()
	}
	fame := app.NewHallOfFame(fameStore)

	rules := app.DefaultRules()
	if cfg.Game.TimeLimit > 0 {
		rules.TimeLimit = cfg.Game.TimeLimit
	}
	if cfg.Game.QuestionsPerRound > 0 {
		rules.QuestionsPerRound = cfg.Game.QuestionsPerRound
	}
	rules.TickInterval = config.Duration(cfg.Game.TickInterval, time.Second)

	service := app.NewGameService(memory.NewSessionStore(), bank, fame, rules)
	wsHandler := transport.NewWSHandler(service)
	fameHandler := transport.NewFameHandler(fame)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	mux.HandleFunc("/halloffame", fameHandler.TopK)
	mux.HandleFunc("/halloffame/export", fameHandler.Export)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz game server on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
