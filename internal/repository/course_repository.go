package repository

import (
	"kernel_school_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// CourseFilter 目录筛选条件，零值字段不参与过滤
type CourseFilter struct {
	Query    string
	Subject  string
	Level    string
	FreeOnly bool
}

func (r *CourseRepository) Search(filter CourseFilter) ([]model.Course, error) {
	tx := r.DB.Model(&model.Course{})

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		tx = tx.Where("title LIKE ? OR subtitle LIKE ?", like, like)
	}
	if filter.Subject != "" {
		tx = tx.Where("subject = ?", filter.Subject)
	}
	if filter.Level != "" {
		tx = tx.Where("level = ?", filter.Level)
	}
	if filter.FreeOnly {
		tx = tx.Where("is_free = ?", true)
	}

	var courses []model.Course
	err := tx.Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) FindLessons(courseID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("course_id = ?", courseID).Order("order_index").Find(&lessons).Error
	return lessons, err
}

func (r *CourseRepository) FindTests(courseID uint) ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Where("course_id = ?", courseID).Find(&tests).Error
	return tests, err
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

// Update 返回受影响行数，0行表示课程不存在
func (r *CourseRepository) Update(course *model.Course) (int64, error) {
	tx := r.DB.Model(&model.Course{}).Where("id = ?", course.ID).Updates(map[string]interface{}{
		"title":    course.Title,
		"subtitle": course.Subtitle,
		"subject":  course.Subject,
		"level":    course.Level,
		"price":    course.Price,
		"is_free":  course.IsFree,
	})
	return tx.RowsAffected, tx.Error
}

func (r *CourseRepository) Delete(id uint) (int64, error) {
	tx := r.DB.Delete(&model.Course{}, id)
	return tx.RowsAffected, tx.Error
}
