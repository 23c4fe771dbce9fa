package repositories

import "pokedex-server/entities"

type TrainerRepository interface {
	Create(trainer *entities.Trainer) error
	GetByID(id string) (*entities.Trainer, error)
	GetByCredentials(username, email string) (*entities.Trainer, error)
	GetAll() ([]entities.Trainer, error)
	UsernameTaken(username, excludeID string) (bool, error)
	EmailTaken(email, excludeID string) (bool, error)
	Update(trainer *entities.Trainer) error
	Delete(id string) error
}

type PokemonRepository interface {
	Create(pokemon *entities.Pokemon) error
	GetByID(id string) (*entities.Pokemon, error)
	GetAll() ([]entities.Pokemon, error)
	GetByTrainerID(trainerID string) ([]entities.Pokemon, error)
	Update(pokemon *entities.Pokemon) error
	Delete(id string) error
	ReleaseByTrainerID(trainerID string) error
}
