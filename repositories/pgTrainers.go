package repositories

import (
	"time"

	"pokedex-server/db"
	"pokedex-server/entities"
)

type trainerPgRepository struct {
	db db.Database
}

func NewTrainerPgRepository(database db.Database) TrainerRepository {
	return &trainerPgRepository{db: database}
}

func (r *trainerPgRepository) Create(trainer *entities.Trainer) error {
	return r.db.GetDB().Create(trainer).Error
}

func (r *trainerPgRepository) GetByID(id string) (*entities.Trainer, error) {
	var trainer entities.Trainer
	err := r.db.GetDB().Where("id = ?", id).First(&trainer).Error
	if err != nil {
		return nil, err
	}
	return &trainer, nil
}

// GetByCredentials looks a trainer up by username AND email, the pair
// used at login.
func (r *trainerPgRepository) GetByCredentials(username, email string) (*entities.Trainer, error) {
	var trainer entities.Trainer
	err := r.db.GetDB().Where("username = ? AND email = ?", username, email).First(&trainer).Error
	if err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerPgRepository) GetAll() ([]entities.Trainer, error) {
	var trainers []entities.Trainer
	err := r.db.GetDB().Order("created_at DESC").Find(&trainers).Error
	return trainers, err
}

// UsernameTaken reports whether another trainer already holds the
// username. excludeID skips the caller's own row on self-update.
func (r *trainerPgRepository) UsernameTaken(username, excludeID string) (bool, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Trainer{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *trainerPgRepository) EmailTaken(email, excludeID string) (bool, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Trainer{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *trainerPgRepository) Update(trainer *entities.Trainer) error {
	trainer.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(trainer).Error
}

func (r *trainerPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Trainer{}).Error
}
