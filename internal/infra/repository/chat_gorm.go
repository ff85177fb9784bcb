package repository

import (
	"context"

	"artspace/internal/domain/model"

	"gorm.io/gorm"
)

type ChatMessageGormRepository struct {
	db *gorm.DB
}

func NewChatMessageGormRepository(db *gorm.DB) *ChatMessageGormRepository {
	return &ChatMessageGormRepository{db: db}
}

func (r *ChatMessageGormRepository) Create(ctx context.Context, msg *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *ChatMessageGormRepository) FindBySenderOrReceiver(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Find(&msgs).Error
	if err != nil {
		return []model.ChatMessage{}, err
	}
	return msgs, nil
}
