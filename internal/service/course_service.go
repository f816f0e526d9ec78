package service

import (
	"errors"

	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/repository"
	"kernel_school_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	Repo *repository.CourseRepository
}

func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{Repo: repo}
}

func (s *CourseService) Catalog(filter repository.CourseFilter) ([]model.Course, error) {
	return s.Repo.Search(filter)
}

// CourseDetail 课程详情：课程本体 + 课时（按顺序） + 试卷
type CourseDetail struct {
	Course  *model.Course  `json:"course"`
	Lessons []model.Lesson `json:"lessons"`
	Tests   []model.Test   `json:"tests"`
}

func (s *CourseService) Detail(courseID uint) (*CourseDetail, error) {
	course, err := s.Repo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	lessons, err := s.Repo.FindLessons(courseID)
	if err != nil {
		return nil, err
	}

	tests, err := s.Repo.FindTests(courseID)
	if err != nil {
		return nil, err
	}

	return &CourseDetail{Course: course, Lessons: lessons, Tests: tests}, nil
}

func (s *CourseService) Create(course *model.Course) error {
	return s.Repo.Create(course)
}

func (s *CourseService) Update(course *model.Course) error {
	affected, err := s.Repo.Update(course)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrCourseNotFound
	}
	return nil
}

func (s *CourseService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrCourseNotFound
	}
	return nil
}
