package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/anupamsoni/mfapi/internal/api"
	"github.com/anupamsoni/mfapi/internal/config"
	"github.com/anupamsoni/mfapi/internal/db"
	"github.com/anupamsoni/mfapi/internal/store/mongostore"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Initialize database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info().Msg("Connecting to MongoDB...")
	database, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Indexes for favorites
	favorites := mongostore.NewFavorites(database.Database())
	if err := favorites.EnsureIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create database indexes")
	}
	logger.Info().Msg("Database connection established successfully")

	// Initialize router
	router := api.SetupRouter(api.Stores{
		Favorites: favorites,
		Stocks:    mongostore.NewStocks(database.Database()),
		Funds:     mongostore.NewFunds(database.Database()),
		Timelines: mongostore.NewTimelines(database.Database()),
		Users:     mongostore.NewUsers(database.Database()),
	}, database, logger)

	// Set up CORS
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: cfg.CORS.SupportsCredentials,
	})
	handler := corsMiddleware.Handler(router)

	// Start the server
	logger.Info().Str("port", cfg.Server.Port).Msg("Server starting")
	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}
