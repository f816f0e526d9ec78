package repository

import (
	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// LearningReportRow 每个用户的选课数与平均成绩。
// 没有任何测试结果的用户 AvgPercent 为 NULL，不折算成0。
type LearningReportRow struct {
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	Courses    int64    `json:"courses"`
	AvgPercent *float64 `json:"avg_percent"`
}

func (r *ReportRepository) LearningReport() ([]LearningReportRow, error) {
	var rows []LearningReportRow
	err := r.DB.Raw(`
		SELECT u.full_name, u.email,
		       COUNT(DISTINCT e.course_id) AS courses,
		       AVG(tr.percent) AS avg_percent
		FROM users u
		LEFT JOIN enrollments e ON e.user_id = u.id
		LEFT JOIN test_results tr ON tr.user_id = u.id
		GROUP BY u.id, u.full_name, u.email
		ORDER BY avg_percent DESC`).Scan(&rows).Error
	return rows, err
}

type ActivityReportRow struct {
	Day     string `json:"day"`
	Actions int64  `json:"actions"`
}

func (r *ReportRepository) ActivityReport(days int) ([]ActivityReportRow, error) {
	var rows []ActivityReportRow
	err := r.DB.Raw(`
		SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS day, COUNT(*) AS actions
		FROM activity_logs
		GROUP BY day
		ORDER BY day DESC
		LIMIT ?`, days).Scan(&rows).Error
	return rows, err
}

type PaymentReportRow struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
	Count int64   `json:"cnt"`
}

func (r *ReportRepository) PaymentsReport(days int) ([]PaymentReportRow, error) {
	var rows []PaymentReportRow
	err := r.DB.Raw(`
		SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS day,
		       SUM(amount) AS total,
		       COUNT(*) AS count
		FROM payments
		WHERE status = 'paid'
		GROUP BY day
		ORDER BY day DESC
		LIMIT ?`, days).Scan(&rows).Error
	return rows, err
}
