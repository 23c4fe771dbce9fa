package httpHandler

import (
	"errors"
	"net/http"

	"pokedex-server/usecases"

	"github.com/gin-gonic/gin"
)

// respondError maps a usecase error onto the HTTP error envelope.
func respondError(c *gin.Context, err error) {
	var ve usecases.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve})
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrNotPokemonOwner),
		errors.Is(err, usecases.ErrNotTrainerOwner),
		errors.Is(err, usecases.ErrAdminRequired):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrUsernameTaken),
		errors.Is(err, usecases.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
