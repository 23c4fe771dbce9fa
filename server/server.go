package server

import (
	"log"
	"net/http"
	"os"

	"pokedex-server/auth"
	"pokedex-server/db"
	"pokedex-server/handlers"
	httpHandler "pokedex-server/handlers/http"
	"pokedex-server/middleware"
	"pokedex-server/repositories"
	"pokedex-server/services"
	"pokedex-server/usecases"
	"pokedex-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
}

// NewServer wires the full dependency graph from a database handle.
func NewServer(database db.Database, jwtSecret string) *Server {
	return NewServerWithRepos(
		repositories.NewTrainerPgRepository(database),
		repositories.NewPokemonPgRepository(database),
		jwtSecret,
	)
}

// NewServerWithRepos wires the HTTP stack over explicit repositories.
func NewServerWithRepos(trainerRepo repositories.TrainerRepository, pokemonRepo repositories.PokemonRepository, jwtSecret string) *Server {
	s := &Server{app: gin.Default()}

	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Unknown routes and methods share one envelope
	s.app.HandleMethodNotAllowed = true
	s.app.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
	s.app.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Not Found"})
	})

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Initialize use cases
	trainerUseCase := usecases.NewTrainerUseCase(trainerRepo, pokemonRepo)
	pokemonUseCase := usecases.NewPokemonUseCase(pokemonRepo)

	// Token service and auth guards
	tokens := auth.NewTokenService(jwtSecret)
	authRequired := middleware.Auth(tokens)
	adminRequired := middleware.AdminOnly(trainerRepo)

	// Capture feed: websocket watcher manager + event log
	manager := ws.NewManager()
	captureFeed := services.NewCaptureFeed(manager)

	// Initialize handlers
	loginHandler := httpHandler.NewLoginHandler(trainerUseCase, tokens)
	trainerHandler := httpHandler.NewTrainerHandler(trainerUseCase)
	pokemonHandler := httpHandler.NewPokemonHandler(pokemonUseCase, captureFeed)
	eventsHandler := handlers.NewEventsHandler(manager, tokens)
	feedHandler := handlers.NewFeedHandler(captureFeed)

	// Trainer routes
	trainers := s.app.Group("/trainers")
	{
		trainers.POST("/login", loginHandler.Login)
		trainers.POST("/create", trainerHandler.Register)
		trainers.GET("", authRequired, adminRequired, trainerHandler.ListTrainers)
		trainers.GET("/:id", trainerHandler.GetTrainer)
		trainers.PUT("/update/:id", authRequired, trainerHandler.UpdateTrainer)
		trainers.PATCH("/update/:id", authRequired, trainerHandler.UpdateTrainer)
		trainers.DELETE("/delete/:id", authRequired, trainerHandler.DeleteTrainer)
	}

	// Pokemon routes
	pokemons := s.app.Group("/pokemons")
	{
		pokemons.GET("", authRequired, adminRequired, pokemonHandler.ListAll)
		pokemons.GET("/owned", authRequired, pokemonHandler.ListOwned)
		pokemons.GET("/:id", authRequired, pokemonHandler.GetPokemon)
		pokemons.POST("/create", authRequired, pokemonHandler.Catch)
		pokemons.PUT("/update/:id", authRequired, pokemonHandler.UpdatePokemon)
		pokemons.PATCH("/update/:id", authRequired, pokemonHandler.UpdatePokemon)
		pokemons.DELETE("/delete/:id", authRequired, pokemonHandler.DeletePokemon)
	}

	// Capture feed routes
	events := s.app.Group("/events")
	events.Use(authRequired, adminRequired)
	{
		events.GET("/recent", feedHandler.GetRecentEvents)
		events.GET("/stats", feedHandler.GetFeedStats)
	}

	s.app.GET("/ws", eventsHandler.HandleCaptureWS)

	return s
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.app
}

func (s *Server) Start() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := s.app.Run("0.0.0.0:" + port); err != nil {
		panic(err)
	}
}
