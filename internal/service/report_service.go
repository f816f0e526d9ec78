package service

import (
	"kernel_school_backend/internal/repository"
)

const reportWindowDays = 30

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

func (s *ReportService) Learning() ([]repository.LearningReportRow, error) {
	return s.Repo.LearningReport()
}

func (s *ReportService) Activity() ([]repository.ActivityReportRow, error) {
	return s.Repo.ActivityReport(reportWindowDays)
}

func (s *ReportService) Payments() ([]repository.PaymentReportRow, error) {
	return s.Repo.PaymentsReport(reportWindowDays)
}
