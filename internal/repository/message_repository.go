package repository

import (
	"time"

	"kernel_school_backend/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

// MessageWithAuthor 聊天消息连同作者昵称
type MessageWithAuthor struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Text      string    `json:"text"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// FindLatest 取最新limit条，新的在前；调用方负责翻转成时间正序
func (r *MessageRepository) FindLatest(limit int) ([]MessageWithAuthor, error) {
	var messages []MessageWithAuthor
	err := r.DB.Model(&model.Message{}).
		Select("messages.id, messages.user_id, messages.text, messages.created_at, users.full_name").
		Joins("JOIN users ON users.id = messages.user_id").
		Order("messages.created_at DESC").
		Limit(limit).
		Scan(&messages).Error
	return messages, err
}

func (r *MessageRepository) Create(message *model.Message) error {
	return r.DB.Create(message).Error
}
