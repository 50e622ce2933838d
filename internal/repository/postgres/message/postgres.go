package message

import (
	"context"
	"errors"

	"gorm.io/gorm"
	messagedomain "grievance-portal-go/internal/domain/message"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type messageWithOwner struct {
	messagedomain.Message
	OwnerID string
}

func (r *PostgresRepository) GetPersonIDBySlug(ctx context.Context, slug string) (string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Table("persons").
		Where("slug = ?", slug).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", messagedomain.ErrInvalidLink
	}
	return ids[0], nil
}

func (r *PostgresRepository) CreateMessage(ctx context.Context, msg *messagedomain.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *PostgresRepository) GetMessageWithOwner(ctx context.Context, id string) (*messagedomain.Message, string, error) {
	var row messageWithOwner
	err := r.db.WithContext(ctx).
		Table("messages").
		Select("messages.*, persons.user_id AS owner_id").
		Joins("JOIN persons ON persons.id = messages.person_id").
		Where("messages.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", messagedomain.ErrMessageNotFound
		}
		return nil, "", err
	}
	msg := row.Message
	return &msg, row.OwnerID, nil
}

func (r *PostgresRepository) MarkDone(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&messagedomain.Message{}).
		Where("id = ?", id).
		Update("done", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return messagedomain.ErrMessageNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteMessage(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&messagedomain.Message{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
