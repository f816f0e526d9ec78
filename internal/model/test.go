package model

// swagger:model Test
type Test struct {
	BaseModel
	CourseID uint   `gorm:"not null;index" json:"course_id"`
	Title    string `gorm:"size:200;not null" json:"title"`
	// 0 表示未配置，评分时回退到默认及格线
	MinPassPercent int `gorm:"default:0" json:"min_pass_percent"`
}

func (Test) TableName() string {
	return "tests"
}

type Question struct {
	BaseModel
	TestID  uint     `gorm:"not null;index" json:"test_id"`
	Text    string   `gorm:"type:text;not null" json:"text"`
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// Answer 的正确性标记绝不进入任何JSON输出：学生读取路径走
// QuestionView/AnswerView，评分路径在服务端比对。
type Answer struct {
	BaseModel
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"size:500;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"-"`
}

func (Answer) TableName() string {
	return "answers"
}

// AnswerView 学生可见的答案选项
// swagger:model AnswerView
type AnswerView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// QuestionView 学生可见的题目
// swagger:model QuestionView
type QuestionView struct {
	ID      uint         `json:"id"`
	Text    string       `json:"text"`
	Answers []AnswerView `json:"answers"`
}

func NewQuestionView(q Question) QuestionView {
	answers := make([]AnswerView, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = AnswerView{ID: a.ID, Text: a.Text}
	}
	return QuestionView{ID: q.ID, Text: q.Text, Answers: answers}
}
