package usecases

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"pokedex-server/entities"
	"pokedex-server/repositories"

	"gorm.io/gorm"
)

var pokemonNamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)

// PokemonInput carries the writable pokemon fields. Empty fields are
// treated as absent on update.
type PokemonInput struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Ability    string `json:"ability"`
	DateCaught string `json:"date_caught"`
}

type PokemonUseCase struct {
	PokemonRepo repositories.PokemonRepository
}

func NewPokemonUseCase(pokemonRepo repositories.PokemonRepository) *PokemonUseCase {
	return &PokemonUseCase{PokemonRepo: pokemonRepo}
}

func validatePokemonName(ve ValidationError, name string) {
	if !pokemonNamePattern.MatchString(name) {
		ve.add("name", "Name must contain only letters")
	}
}

// validatePokemonType capitalizes the input before the membership check
// and quotes the raw input in the error when it fails.
func validatePokemonType(ve ValidationError, raw string) string {
	normalized, ok := entities.NormalizeType(raw)
	if !ok {
		ve.add("type", fmt.Sprintf("Invalid pokemon type %q", raw))
	}
	return normalized
}

// Catch records a new pokemon owned by the calling trainer. The capture
// date defaults to today.
func (uc *PokemonUseCase) Catch(trainerID string, in PokemonInput) (*entities.Pokemon, error) {
	ve := ValidationError{}
	if in.Name == "" {
		ve.add("name", "Name is required")
	} else {
		validatePokemonName(ve, in.Name)
	}
	pokemonType := ""
	if in.Type == "" {
		ve.add("type", "Type is required")
	} else {
		pokemonType = validatePokemonType(ve, in.Type)
	}
	if in.Ability == "" {
		ve.add("ability", "Ability is required")
	}
	dateCaught := in.DateCaught
	if dateCaught == "" {
		dateCaught = time.Now().Format(entities.DateLayout)
	} else if _, err := time.Parse(entities.DateLayout, dateCaught); err != nil {
		ve.add("date_caught", "Date caught must use the YYYY-MM-DD format")
	}
	if len(ve) > 0 {
		return nil, ve
	}

	owner := trainerID
	pokemon := &entities.Pokemon{
		Name:       in.Name,
		Type:       pokemonType,
		Ability:    in.Ability,
		DateCaught: dateCaught,
		TrainerID:  &owner,
	}
	if err := uc.PokemonRepo.Create(pokemon); err != nil {
		return nil, err
	}
	return pokemon, nil
}

// GetPokemon returns a single pokemon, visible only to its owner. The
// not-found check runs before the ownership check.
func (uc *PokemonUseCase) GetPokemon(callerID, id string) (*entities.Pokemon, error) {
	pokemon, err := uc.getByID(id)
	if err != nil {
		return nil, err
	}
	if pokemon.TrainerID == nil || *pokemon.TrainerID != callerID {
		return nil, ErrNotPokemonOwner
	}
	return pokemon, nil
}

func (uc *PokemonUseCase) ListAll() ([]entities.Pokemon, error) {
	return uc.PokemonRepo.GetAll()
}

// ListOwned returns the caller's pokemons. An empty collection is
// reported as not found.
func (uc *PokemonUseCase) ListOwned(trainerID string) ([]entities.Pokemon, error) {
	pokemons, err := uc.PokemonRepo.GetByTrainerID(trainerID)
	if err != nil {
		return nil, err
	}
	if len(pokemons) == 0 {
		return nil, ErrNotFound
	}
	return pokemons, nil
}

// UpdatePokemon merges the provided fields onto the stored record. Only
// the owner may update it.
func (uc *PokemonUseCase) UpdatePokemon(callerID, id string, in PokemonInput) (*entities.Pokemon, error) {
	existing, err := uc.GetPokemon(callerID, id)
	if err != nil {
		return nil, err
	}

	ve := ValidationError{}
	if in.Name != "" {
		validatePokemonName(ve, in.Name)
	}
	pokemonType := existing.Type
	if in.Type != "" {
		pokemonType = validatePokemonType(ve, in.Type)
	}
	if len(ve) > 0 {
		return nil, ve
	}

	if in.Name != "" {
		existing.Name = in.Name
	}
	existing.Type = pokemonType
	if in.Ability != "" {
		existing.Ability = in.Ability
	}

	if err := uc.PokemonRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePokemon removes a pokemon. Only the owner may delete it.
func (uc *PokemonUseCase) DeletePokemon(callerID, id string) error {
	if _, err := uc.GetPokemon(callerID, id); err != nil {
		return err
	}
	return uc.PokemonRepo.Delete(id)
}

func (uc *PokemonUseCase) getByID(id string) (*entities.Pokemon, error) {
	pokemon, err := uc.PokemonRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pokemon, nil
}
