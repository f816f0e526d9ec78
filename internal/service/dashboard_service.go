package service

import (
	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/repository"
)

const (
	dashboardResultLimit   = 20
	dashboardActivityLimit = 30
)

type DashboardService struct {
	Enrollments *repository.EnrollmentRepository
	Progress    *repository.ProgressRepository
	Activity    *repository.ActivityRepository
}

func NewDashboardService(
	enrollments *repository.EnrollmentRepository,
	progress *repository.ProgressRepository,
	activity *repository.ActivityRepository,
) *DashboardService {
	return &DashboardService{
		Enrollments: enrollments,
		Progress:    progress,
		Activity:    activity,
	}
}

// Dashboard 三块独立读取，各自反映读取瞬间的库状态
type Dashboard struct {
	MyCourses []model.Course               `json:"myCourses"`
	Results   []repository.ResultWithTitle `json:"results"`
	Activity  []model.ActivityLog          `json:"activity"`
}

func (s *DashboardService) GetUserDashboard(userID uint) (*Dashboard, error) {
	courses, err := s.Enrollments.FindCoursesByUser(userID)
	if err != nil {
		return nil, err
	}

	results, err := s.Progress.FindRecentResults(userID, dashboardResultLimit)
	if err != nil {
		return nil, err
	}

	activity, err := s.Activity.FindRecentByUser(userID, dashboardActivityLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		MyCourses: courses,
		Results:   results,
		Activity:  activity,
	}, nil
}

// GetProgressHistory 成绩按时间正序，供前端画趋势图
func (s *DashboardService) GetProgressHistory(userID uint) ([]repository.ProgressPoint, error) {
	return s.Progress.FindResultHistory(userID)
}
