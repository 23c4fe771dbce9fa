package usecases

import (
	"errors"
	"regexp"

	"pokedex-server/entities"
	"pokedex-server/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxUsernameLength = 15
	minPasswordLength = 10
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// TrainerInput carries the writable trainer fields. Empty fields are
// treated as absent on update.
type TrainerInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Team     string `json:"team"`
}

type TrainerUseCase struct {
	TrainerRepo repositories.TrainerRepository
	PokemonRepo repositories.PokemonRepository
}

func NewTrainerUseCase(trainerRepo repositories.TrainerRepository, pokemonRepo repositories.PokemonRepository) *TrainerUseCase {
	return &TrainerUseCase{
		TrainerRepo: trainerRepo,
		PokemonRepo: pokemonRepo,
	}
}

func validateUsername(ve ValidationError, username string) {
	if !usernamePattern.MatchString(username) {
		ve.add("username", "Username must contain only letters and numbers")
	}
	if len(username) > maxUsernameLength {
		ve.add("username", "Username must be at most 15 characters long")
	}
}

func validatePassword(ve ValidationError, password string) {
	if len(password) < minPasswordLength {
		ve.add("password", "Password must be at least 10 characters long")
	}
}

// validateTeam normalizes the team name and records an error when it is
// not one of the known teams.
func validateTeam(ve ValidationError, team string) string {
	normalized, ok := entities.NormalizeTeam(team)
	if !ok {
		ve.add("team", `Invalid team "`+team+`"`)
	}
	return normalized
}

// Register creates a new trainer account. Usernames and emails must be
// unique; the password is hashed after validation and never leaves the
// store in readable form.
func (uc *TrainerUseCase) Register(in TrainerInput) (*entities.Trainer, error) {
	ve := ValidationError{}
	if in.Username == "" {
		ve.add("username", "Username is required")
	} else {
		validateUsername(ve, in.Username)
	}
	if in.Email == "" {
		ve.add("email", "Email is required")
	}
	if in.Password == "" {
		ve.add("password", "Password is required")
	} else {
		validatePassword(ve, in.Password)
	}
	team := ""
	if in.Team != "" {
		team = validateTeam(ve, in.Team)
	}
	if len(ve) > 0 {
		return nil, ve
	}

	if taken, err := uc.TrainerRepo.UsernameTaken(in.Username, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := uc.TrainerRepo.EmailTaken(in.Email, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	trainer := &entities.Trainer{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		Team:     team,
	}
	if err := uc.TrainerRepo.Create(trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

// Login verifies the username+email+password tuple. Every failure mode
// returns the same error so callers cannot probe which part was wrong.
func (uc *TrainerUseCase) Login(username, email, password string) (*entities.Trainer, error) {
	trainer, err := uc.TrainerRepo.GetByCredentials(username, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(trainer.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return trainer, nil
}

func (uc *TrainerUseCase) GetTrainer(id string) (*entities.Trainer, error) {
	trainer, err := uc.TrainerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trainer, nil
}

func (uc *TrainerUseCase) ListTrainers() ([]entities.Trainer, error) {
	return uc.TrainerRepo.GetAll()
}

// UpdateTrainer merges the provided fields onto the stored record. Only
// the account owner may update it; the not-found check runs first.
func (uc *TrainerUseCase) UpdateTrainer(callerID, id string, in TrainerInput) (*entities.Trainer, error) {
	existing, err := uc.GetTrainer(id)
	if err != nil {
		return nil, err
	}
	if callerID != existing.ID {
		return nil, ErrNotTrainerOwner
	}

	ve := ValidationError{}
	if in.Username != "" {
		validateUsername(ve, in.Username)
	}
	if in.Password != "" {
		validatePassword(ve, in.Password)
	}
	team := existing.Team
	if in.Team != "" {
		team = validateTeam(ve, in.Team)
	}
	if len(ve) > 0 {
		return nil, ve
	}

	if in.Username != "" && in.Username != existing.Username {
		if taken, err := uc.TrainerRepo.UsernameTaken(in.Username, existing.ID); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrUsernameTaken
		}
		existing.Username = in.Username
	}
	if in.Email != "" && in.Email != existing.Email {
		if taken, err := uc.TrainerRepo.EmailTaken(in.Email, existing.ID); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrEmailTaken
		}
		existing.Email = in.Email
	}
	if in.Name != "" {
		existing.Name = in.Name
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existing.Password = string(hash)
	}
	existing.Team = team

	if err := uc.TrainerRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteTrainer removes the account. Owned pokemons are released, not
// deleted: their owner reference becomes null.
func (uc *TrainerUseCase) DeleteTrainer(id string) error {
	if _, err := uc.GetTrainer(id); err != nil {
		return err
	}
	if err := uc.PokemonRepo.ReleaseByTrainerID(id); err != nil {
		return err
	}
	return uc.TrainerRepo.Delete(id)
}
