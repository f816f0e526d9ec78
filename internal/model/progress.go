package model

// swagger:model TestResult
type TestResult struct {
	AppendOnly
	UserID  uint `gorm:"not null;index" json:"user_id"`
	TestID  uint `gorm:"not null;index" json:"test_id"`
	Percent int  `gorm:"not null" json:"percent"`
	Passed  bool `gorm:"not null" json:"passed"`
}

func (TestResult) TableName() string {
	return "test_results"
}

type ProgressType string

const (
	ProgressLesson   ProgressType = "lesson"
	ProgressHomework ProgressType = "homework"
	ProgressTest     ProgressType = "test"
)

// StudentProgress 完成事件日志，一行一个事件
type StudentProgress struct {
	AppendOnly
	UserID  uint         `gorm:"not null;index" json:"user_id"`
	Type    ProgressType `gorm:"type:enum('lesson','homework','test');not null" json:"type"`
	RefID   uint         `gorm:"not null" json:"ref_id"`
	Percent *int         `json:"percent,omitempty"`
}

func (StudentProgress) TableName() string {
	return "student_progress"
}

type HomeworkSubmission struct {
	AppendOnly
	HomeworkID uint   `gorm:"not null;index" json:"homework_id"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	AnswerText string `gorm:"type:text" json:"answer_text"`
}

func (HomeworkSubmission) TableName() string {
	return "homework_submissions"
}
