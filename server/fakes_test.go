package server

import (
	"pokedex-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repositories so the full router can be exercised without a
// database.

type fakeTrainerRepo struct {
	trainers map[string]*entities.Trainer
}

func newFakeTrainerRepo() *fakeTrainerRepo {
	return &fakeTrainerRepo{trainers: make(map[string]*entities.Trainer)}
}

func (r *fakeTrainerRepo) Create(t *entities.Trainer) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	cp := *t
	r.trainers[t.ID] = &cp
	return nil
}

func (r *fakeTrainerRepo) GetByID(id string) (*entities.Trainer, error) {
	t, ok := r.trainers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTrainerRepo) GetByCredentials(username, email string) (*entities.Trainer, error) {
	for _, t := range r.trainers {
		if t.Username == username && t.Email == email {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTrainerRepo) GetAll() ([]entities.Trainer, error) {
	all := make([]entities.Trainer, 0, len(r.trainers))
	for _, t := range r.trainers {
		all = append(all, *t)
	}
	return all, nil
}

func (r *fakeTrainerRepo) UsernameTaken(username, excludeID string) (bool, error) {
	for _, t := range r.trainers {
		if t.Username == username && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTrainerRepo) EmailTaken(email, excludeID string) (bool, error) {
	for _, t := range r.trainers {
		if t.Email == email && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTrainerRepo) Update(t *entities.Trainer) error {
	if _, ok := r.trainers[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *t
	r.trainers[t.ID] = &cp
	return nil
}

func (r *fakeTrainerRepo) Delete(id string) error {
	delete(r.trainers, id)
	return nil
}

type fakePokemonRepo struct {
	pokemons map[string]*entities.Pokemon
}

func newFakePokemonRepo() *fakePokemonRepo {
	return &fakePokemonRepo{pokemons: make(map[string]*entities.Pokemon)}
}

func (r *fakePokemonRepo) Create(p *entities.Pokemon) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	cp := *p
	r.pokemons[p.ID] = &cp
	return nil
}

func (r *fakePokemonRepo) GetByID(id string) (*entities.Pokemon, error) {
	p, ok := r.pokemons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePokemonRepo) GetAll() ([]entities.Pokemon, error) {
	all := make([]entities.Pokemon, 0, len(r.pokemons))
	for _, p := range r.pokemons {
		all = append(all, *p)
	}
	return all, nil
}

func (r *fakePokemonRepo) GetByTrainerID(trainerID string) ([]entities.Pokemon, error) {
	var owned []entities.Pokemon
	for _, p := range r.pokemons {
		if p.TrainerID != nil && *p.TrainerID == trainerID {
			owned = append(owned, *p)
		}
	}
	return owned, nil
}

func (r *fakePokemonRepo) Update(p *entities.Pokemon) error {
	if _, ok := r.pokemons[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.pokemons[p.ID] = &cp
	return nil
}

func (r *fakePokemonRepo) Delete(id string) error {
	delete(r.pokemons, id)
	return nil
}

func (r *fakePokemonRepo) ReleaseByTrainerID(trainerID string) error {
	for _, p := range r.pokemons {
		if p.TrainerID != nil && *p.TrainerID == trainerID {
			p.TrainerID = nil
		}
	}
	return nil
}
