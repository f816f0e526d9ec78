package repository

import (
	"time"

	"kernel_school_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// RecordLessonCompletion 进度和操作日志写入同一事务
func (r *ProgressRepository) RecordLessonCompletion(progress *model.StudentProgress, log *model.ActivityLog) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(progress).Error; err != nil {
			return err
		}
		return tx.Create(log).Error
	})
}

// SubmitHomework 作业内容、进度、操作日志写入同一事务
func (r *ProgressRepository) SubmitHomework(submission *model.HomeworkSubmission, progress *model.StudentProgress, log *model.ActivityLog) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}
		if err := tx.Create(progress).Error; err != nil {
			return err
		}
		return tx.Create(log).Error
	})
}

// ResultWithTitle 仪表盘用：测试结果连同试卷标题
type ResultWithTitle struct {
	model.TestResult
	TestTitle string `json:"test_title"`
}

func (r *ProgressRepository) FindRecentResults(userID uint, limit int) ([]ResultWithTitle, error) {
	var results []ResultWithTitle
	err := r.DB.Model(&model.TestResult{}).
		Select("test_results.*, tests.title AS test_title").
		Joins("JOIN tests ON tests.id = test_results.test_id").
		Where("test_results.user_id = ?", userID).
		Order("test_results.created_at DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

// ProgressPoint 成绩趋势图的一个采样点
type ProgressPoint struct {
	Percent   int       `json:"percent"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *ProgressRepository) FindResultHistory(userID uint) ([]ProgressPoint, error) {
	var points []ProgressPoint
	err := r.DB.Model(&model.TestResult{}).
		Select("percent, created_at").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Scan(&points).Error
	return points, err
}
