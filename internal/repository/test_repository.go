package repository

import (
	"kernel_school_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// FindQuestions 连同所有答案选项一次取出，评分和出题共用
func (r *TestRepository) FindQuestions(testID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Answers").Where("test_id = ?", testID).Find(&questions).Error
	return questions, err
}

// RecordSubmission 结果、进度、操作日志三条写入同一事务
func (r *TestRepository) RecordSubmission(result *model.TestResult, progress *model.StudentProgress, log *model.ActivityLog) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		if err := tx.Create(progress).Error; err != nil {
			return err
		}
		return tx.Create(log).Error
	})
}
