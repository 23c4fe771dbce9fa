package httpHandler

import (
	"net/http"

	"pokedex-server/entities"
	"pokedex-server/feed"
	"pokedex-server/middleware"
	"pokedex-server/services"
	"pokedex-server/usecases"

	"github.com/gin-gonic/gin"
)

type PokemonHandler struct {
	useCase *usecases.PokemonUseCase
	feed    *services.CaptureFeed
}

func NewPokemonHandler(useCase *usecases.PokemonUseCase, captureFeed *services.CaptureFeed) *PokemonHandler {
	return &PokemonHandler{useCase: useCase, feed: captureFeed}
}

// PokemonView is the full output shape for a pokemon record.
type PokemonView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Ability    string  `json:"ability"`
	DateCaught string  `json:"date_caught"`
	TrainerID  *string `json:"trainer_id,omitempty"`
}

// PokemonUpdatedView is the output shape after an update.
type PokemonUpdatedView struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Ability string `json:"ability"`
}

func newPokemonView(p *entities.Pokemon) PokemonView {
	return PokemonView{
		ID:         p.ID,
		Name:       p.Name,
		Type:       p.Type,
		Ability:    p.Ability,
		DateCaught: p.DateCaught,
		TrainerID:  p.TrainerID,
	}
}

func newPokemonViews(pokemons []entities.Pokemon) []PokemonView {
	views := make([]PokemonView, 0, len(pokemons))
	for i := range pokemons {
		views = append(views, newPokemonView(&pokemons[i]))
	}
	return views
}

// Catch handles POST /pokemons/create
func (h *PokemonHandler) Catch(c *gin.Context) {
	var input usecases.PokemonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	callerID := c.GetString(middleware.TrainerIDKey)
	pokemon, err := h.useCase.Catch(callerID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.feed.Publish(feed.CaptureEvent{
		PokemonID: pokemon.ID,
		Name:      pokemon.Name,
		Type:      pokemon.Type,
		TrainerID: callerID,
		CaughtAt:  pokemon.DateCaught,
	})

	c.JSON(http.StatusCreated, newPokemonView(pokemon))
}

// GetPokemon handles GET /pokemons/:id (owner only)
func (h *PokemonHandler) GetPokemon(c *gin.Context) {
	callerID := c.GetString(middleware.TrainerIDKey)
	pokemon, err := h.useCase.GetPokemon(callerID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPokemonView(pokemon))
}

// ListAll handles GET /pokemons (admin only)
func (h *PokemonHandler) ListAll(c *gin.Context) {
	pokemons, err := h.useCase.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve pokemons"})
		return
	}

	c.JSON(http.StatusOK, newPokemonViews(pokemons))
}

// ListOwned handles GET /pokemons/owned
func (h *PokemonHandler) ListOwned(c *gin.Context) {
	callerID := c.GetString(middleware.TrainerIDKey)
	pokemons, err := h.useCase.ListOwned(callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPokemonViews(pokemons))
}

// UpdatePokemon handles PUT/PATCH /pokemons/update/:id
func (h *PokemonHandler) UpdatePokemon(c *gin.Context) {
	var input usecases.PokemonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	callerID := c.GetString(middleware.TrainerIDKey)
	pokemon, err := h.useCase.UpdatePokemon(callerID, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PokemonUpdatedView{
		Name:    pokemon.Name,
		Type:    pokemon.Type,
		Ability: pokemon.Ability,
	})
}

// DeletePokemon handles DELETE /pokemons/delete/:id
func (h *PokemonHandler) DeletePokemon(c *gin.Context) {
	callerID := c.GetString(middleware.TrainerIDKey)
	if err := h.useCase.DeletePokemon(callerID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pokemon deleted successfully"})
}
