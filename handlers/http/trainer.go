package httpHandler

import (
	"net/http"

	"pokedex-server/entities"
	"pokedex-server/middleware"
	"pokedex-server/usecases"

	"github.com/gin-gonic/gin"
)

type TrainerHandler struct {
	useCase *usecases.TrainerUseCase
}

func NewTrainerHandler(useCase *usecases.TrainerUseCase) *TrainerHandler {
	return &TrainerHandler{useCase: useCase}
}

// TrainerPublicView is the output shape for the unauthenticated
// single-trainer read.
type TrainerPublicView struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// TrainerAccountView is the output shape returned to the account holder
// after registration or self-update.
type TrainerAccountView struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TrainerAdminView is the output shape of the admin-only listing.
type TrainerAdminView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Team     string `json:"team"`
	Admin    bool   `json:"admin"`
}

func newTrainerAccountView(t *entities.Trainer) TrainerAccountView {
	return TrainerAccountView{Name: t.Name, Username: t.Username, Email: t.Email}
}

func newTrainerAdminView(t *entities.Trainer) TrainerAdminView {
	return TrainerAdminView{
		ID:       t.ID,
		Name:     t.Name,
		Username: t.Username,
		Email:    t.Email,
		Team:     t.Team,
		Admin:    t.Admin,
	}
}

// Register handles POST /trainers/create
func (h *TrainerHandler) Register(c *gin.Context) {
	var input usecases.TrainerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	trainer, err := h.useCase.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTrainerAccountView(trainer))
}

// GetTrainer handles GET /trainers/:id (public profile)
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	trainer, err := h.useCase.GetTrainer(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TrainerPublicView{Name: trainer.Name, Username: trainer.Username})
}

// ListTrainers handles GET /trainers (admin only)
func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.useCase.ListTrainers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve trainers"})
		return
	}

	views := make([]TrainerAdminView, 0, len(trainers))
	for i := range trainers {
		views = append(views, newTrainerAdminView(&trainers[i]))
	}
	c.JSON(http.StatusOK, views)
}

// UpdateTrainer handles PUT/PATCH /trainers/update/:id
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	var input usecases.TrainerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	callerID := c.GetString(middleware.TrainerIDKey)
	trainer, err := h.useCase.UpdateTrainer(callerID, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTrainerAccountView(trainer))
}

// DeleteTrainer handles DELETE /trainers/delete/:id
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	if err := h.useCase.DeleteTrainer(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted successfully"})
}
