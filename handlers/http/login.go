package httpHandler

import (
	"net/http"

	"pokedex-server/auth"
	"pokedex-server/usecases"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	trainers *usecases.TrainerUseCase
	tokens   *auth.TokenService
}

func NewLoginHandler(trainers *usecases.TrainerUseCase, tokens *auth.TokenService) *LoginHandler {
	return &LoginHandler{trainers: trainers, tokens: tokens}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /trainers/login. Credential failures are reported
// with one uniform message.
func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	trainer, err := h.trainers.Login(req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(trainer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
