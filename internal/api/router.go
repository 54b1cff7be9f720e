package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/anupamsoni/mfapi/internal/handlers"
	"github.com/anupamsoni/mfapi/internal/services"
	"github.com/anupamsoni/mfapi/internal/store"
)

// Stores bundles the collection handles the router wires into the services.
// Passing them in explicitly keeps everything testable against memstore.
type Stores struct {
	Favorites store.Favorites
	Stocks    store.Stocks
	Funds     store.Funds
	Timelines store.Timelines
	Users     store.Users
}

// SetupRouter configures all routes and returns the router.
func SetupRouter(stores Stores, pinger Pinger, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Health and meta endpoints
	router.HandleFunc("/health", HealthHandler).Methods("GET")
	router.HandleFunc("/ready", ReadyHandler(pinger)).Methods("GET")
	router.HandleFunc("/", RootHandler).Methods("GET")

	// Create services
	favoriteService := services.NewFavoriteService(stores.Favorites, stores.Stocks, stores.Funds)
	userService := services.NewUserService(stores.Users)
	fundService := services.NewFundService(stores.Funds)
	stockService := services.NewStockService(stores.Stocks, stores.Timelines)

	// Create handlers using services
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, log)
	userHandler := handlers.NewUserHandler(userService, log)
	fundHandler := handlers.NewFundHandler(fundService, log)
	stockHandler := handlers.NewStockHandler(stockService, log)

	// Register routes
	favoriteHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	fundHandler.RegisterRoutes(router)
	stockHandler.RegisterRoutes(router)

	return router
}
