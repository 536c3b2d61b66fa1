package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/roomvote/api/internal/adapters/handler/http"
	"github.com/roomvote/api/internal/adapters/repository/postgres"
	"github.com/roomvote/api/internal/core/domain"
	"github.com/roomvote/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("failed to reach database", zap.Error(err))
	}

	identity := domain.ParseIdentityMode(os.Getenv("VOTER_IDENTITY"))
	logger.Info("voter identity mode", zap.String("mode", string(identity)))

	roomRepo := postgres.NewRoomRepository(db)
	suggestionRepo := postgres.NewSuggestionRepository(db)
	voteRepo := postgres.NewVoteRepository(db)

	roomService := services.NewRoomService(roomRepo)
	suggestionService := services.NewSuggestionService(roomRepo, suggestionRepo)
	voteService := services.NewVoteService(suggestionRepo, voteRepo, identity)

	roomHandler := http.NewRoomHandler(roomService, logger)
	suggestionHandler := http.NewSuggestionHandler(suggestionService, logger)
	voteHandler := http.NewVoteHandler(voteService, logger)

	handler := http.NewHandler(roomHandler, suggestionHandler, voteHandler)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}
	server := &stdhttp.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown failed", zap.Error(err))
	}
}

func dbConnString() string {
	dbName, user, password, host, port := dbConfig()
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}

func dbConfig() (dbName string, user string, password string, host string, port string) {
	dbName = os.Getenv("POSTGRES_DB")
	user = os.Getenv("POSTGRES_USER")
	password = os.Getenv("POSTGRES_PASSWORD")
	host = os.Getenv("POSTGRES_HOST")
	port = os.Getenv("POSTGRES_PORT")
	return
}
