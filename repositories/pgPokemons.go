package repositories

import (
	"time"

	"pokedex-server/db"
	"pokedex-server/entities"
)

type pokemonPgRepository struct {
	db db.Database
}

func NewPokemonPgRepository(database db.Database) PokemonRepository {
	return &pokemonPgRepository{db: database}
}

func (r *pokemonPgRepository) Create(pokemon *entities.Pokemon) error {
	return r.db.GetDB().Create(pokemon).Error
}

func (r *pokemonPgRepository) GetByID(id string) (*entities.Pokemon, error) {
	var pokemon entities.Pokemon
	err := r.db.GetDB().Where("id = ?", id).First(&pokemon).Error
	if err != nil {
		return nil, err
	}
	return &pokemon, nil
}

func (r *pokemonPgRepository) GetAll() ([]entities.Pokemon, error) {
	var pokemons []entities.Pokemon
	err := r.db.GetDB().Find(&pokemons).Error
	return pokemons, err
}

func (r *pokemonPgRepository) GetByTrainerID(trainerID string) ([]entities.Pokemon, error) {
	var pokemons []entities.Pokemon
	err := r.db.GetDB().Where("trainer_id = ?", trainerID).Order("created_at DESC").Find(&pokemons).Error
	return pokemons, err
}

func (r *pokemonPgRepository) Update(pokemon *entities.Pokemon) error {
	pokemon.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(pokemon).Error
}

func (r *pokemonPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Pokemon{}).Error
}

// ReleaseByTrainerID clears the owner reference on every pokemon the
// trainer owns. Used when a trainer account is removed.
func (r *pokemonPgRepository) ReleaseByTrainerID(trainerID string) error {
	return r.db.GetDB().Model(&entities.Pokemon{}).
		Where("trainer_id = ?", trainerID).
		Update("trainer_id", nil).Error
}
