package person

import (
	"context"
	"errors"

	"gorm.io/gorm"
	persondomain "grievance-portal-go/internal/domain/person"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPersonsWithMessages(ctx context.Context, userID string) ([]persondomain.Person, error) {
	var persons []persondomain.Person
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc, id asc")
		}).
		Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *PostgresRepository) GetPersonBySlug(ctx context.Context, slug string) (*persondomain.Person, error) {
	var person persondomain.Person
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, persondomain.ErrPersonNotFound
		}
		return nil, err
	}
	return &person, nil
}

func (r *PostgresRepository) IsSlugTaken(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&persondomain.Person{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CreatePerson(ctx context.Context, person *persondomain.Person) error {
	err := r.db.WithContext(ctx).Omit("Messages").Create(person).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return persondomain.ErrSlugTaken
	}
	return err
}

// DeletePerson relies on messages.person_id ON DELETE CASCADE.
func (r *PostgresRepository) DeletePerson(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&persondomain.Person{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
