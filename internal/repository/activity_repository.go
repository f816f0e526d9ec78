package repository

import (
	"kernel_school_backend/internal/model"

	"gorm.io/gorm"
)

// ActivityRepository 只读；日志行都在各写路径的事务里落库
type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) FindRecentByUser(userID uint, limit int) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
