package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTrainerUseCase() (*TrainerUseCase, *fakeTrainerRepo, *fakePokemonRepo) {
	trainerRepo := newFakeTrainerRepo()
	pokemonRepo := newFakePokemonRepo()
	return NewTrainerUseCase(trainerRepo, pokemonRepo), trainerRepo, pokemonRepo
}

func validInput() TrainerInput {
	return TrainerInput{
		Name:     "Ash",
		Username: "ash123",
		Email:    "ash@x.com",
		Password: "pikachu123",
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	uc, repo, _ := newTrainerUseCase()

	trainer, err := uc.Register(validInput())
	require.NoError(t, err)
	require.NotEmpty(t, trainer.ID)

	assert.False(t, trainer.Admin)

	stored, err := repo.GetByID(trainer.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "pikachu123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pikachu123")))
}

func TestRegister_FieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TrainerInput)
		field  string
	}{
		{"short password", func(in *TrainerInput) { in.Password = "short" }, "password"},
		{"missing password", func(in *TrainerInput) { in.Password = "" }, "password"},
		{"username with symbols", func(in *TrainerInput) { in.Username = "ash_123!" }, "username"},
		{"username too long", func(in *TrainerInput) { in.Username = "abcdefghijklmnop" }, "username"},
		{"missing username", func(in *TrainerInput) { in.Username = "" }, "username"},
		{"missing email", func(in *TrainerInput) { in.Email = "" }, "email"},
		{"unknown team", func(in *TrainerInput) { in.Team = "Rocket" }, "team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := newTrainerUseCase()
			in := validInput()
			tt.mutate(&in)

			_, err := uc.Register(in)
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve, tt.field)
			assert.Empty(t, repo.trainers, "nothing should be persisted")
		})
	}
}

func TestRegister_NormalizesTeam(t *testing.T) {
	uc, _, _ := newTrainerUseCase()

	in := validInput()
	in.Team = "valor"
	trainer, err := uc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, "Valor", trainer.Team)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, repo, _ := newTrainerUseCase()

	_, err := uc.Register(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Email = "other@x.com"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Len(t, repo.trainers, 1)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, repo, _ := newTrainerUseCase()

	_, err := uc.Register(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Username = "misty"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.trainers, 1)
}

func TestLogin_Success(t *testing.T) {
	uc, _, _ := newTrainerUseCase()

	registered, err := uc.Register(validInput())
	require.NoError(t, err)

	trainer, err := uc.Login("ash123", "ash@x.com", "pikachu123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, trainer.ID)
}

func TestLogin_UniformFailure(t *testing.T) {
	uc, _, _ := newTrainerUseCase()

	_, err := uc.Register(validInput())
	require.NoError(t, err)

	attempts := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"wrong password", "ash123", "ash@x.com", "wrongwrongwrong"},
		{"wrong username", "misty", "ash@x.com", "pikachu123"},
		{"wrong email", "ash123", "misty@x.com", "pikachu123"},
		{"unknown trainer", "nobody", "nobody@x.com", "pikachu123"},
	}

	for _, tt := range attempts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestUpdateTrainer_OwnerOnly(t *testing.T) {
	uc, _, _ := newTrainerUseCase()

	trainer, err := uc.Register(validInput())
	require.NoError(t, err)

	_, err = uc.UpdateTrainer("someone-else", trainer.ID, TrainerInput{Name: "Gary"})
	assert.ErrorIs(t, err, ErrNotTrainerOwner)

	stored, err := uc.GetTrainer(trainer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ash", stored.Name)
}

func TestUpdateTrainer_NotFoundBeforeAuthorization(t *testing.T) {
	uc, _, _ := newTrainerUseCase()

	_, err := uc.UpdateTrainer("someone-else", "missing-id", TrainerInput{Name: "Gary"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTrainer_PartialMerge(t *testing.T) {
	uc, _, _ := newTrainerUseCase()

	trainer, err := uc.Register(validInput())
	require.NoError(t, err)

	updated, err := uc.UpdateTrainer(trainer.ID, trainer.ID, TrainerInput{Email: "ash@pallet.town"})
	require.NoError(t, err)
	assert.Equal(t, "ash@pallet.town", updated.Email)
	assert.Equal(t, "Ash", updated.Name)
	assert.Equal(t, "ash123", updated.Username)

	// password change re-hashes
	updated, err = uc.UpdateTrainer(trainer.ID, trainer.ID, TrainerInput{Password: "thunderbolt99"})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("thunderbolt99")))
}

func TestUpdateTrainer_KeepingOwnUsernameIsNotADuplicate(t *testing.T) {
	uc, _, _ := newTrainerUseCase()

	trainer, err := uc.Register(validInput())
	require.NoError(t, err)

	_, err = uc.UpdateTrainer(trainer.ID, trainer.ID, TrainerInput{Username: "ash123", Name: "Red"})
	assert.NoError(t, err)
}

func TestDeleteTrainer_OrphansPokemons(t *testing.T) {
	uc, trainerRepo, pokemonRepo := newTrainerUseCase()

	trainer, err := uc.Register(validInput())
	require.NoError(t, err)

	pokemonUC := NewPokemonUseCase(pokemonRepo)
	pokemon, err := pokemonUC.Catch(trainer.ID, PokemonInput{Name: "Pikachu", Type: "electric", Ability: "Static"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTrainer(trainer.ID))

	_, err = trainerRepo.GetByID(trainer.ID)
	assert.Error(t, err)

	orphan, err := pokemonRepo.GetByID(pokemon.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.TrainerID, "pokemon should be released, not deleted")
}

func TestDeleteTrainer_NotFound(t *testing.T) {
	uc, _, _ := newTrainerUseCase()

	err := uc.DeleteTrainer("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
