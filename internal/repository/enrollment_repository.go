package repository

import (
	"kernel_school_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Enroll 重复报名依赖唯一索引静默忽略
func (r *EnrollmentRepository) Enroll(userID, courseID uint) error {
	enrollment := model.Enrollment{UserID: userID, CourseID: courseID}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollment).Error
}

func (r *EnrollmentRepository) FindCoursesByUser(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Joins("JOIN enrollments e ON e.course_id = courses.id").
		Where("e.user_id = ?", userID).
		Find(&courses).Error
	return courses, err
}

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) Add(userID, lessonID uint) error {
	favorite := model.Favorite{UserID: userID, LessonID: lessonID}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error
}
