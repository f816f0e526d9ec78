package service

import (
	"encoding/json"
	"errors"
	"math"

	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/repository"
	"kernel_school_backend/internal/util"

	"gorm.io/gorm"
)

// DefaultPassPercent 试卷未配置及格线时的默认值
const DefaultPassPercent = 60

const failRecommendation = "We recommend retaking the test, since the score is below the pass threshold."

type TestService struct {
	Repo *repository.TestRepository
}

func NewTestService(repo *repository.TestRepository) *TestService {
	return &TestService{Repo: repo}
}

// TestDetail 学生可见的试卷：答案选项不带正确性标记
type TestDetail struct {
	Test      *model.Test          `json:"test"`
	Questions []model.QuestionView `json:"questions"`
}

func (s *TestService) LoadTest(testID uint) (*TestDetail, error) {
	test, err := s.Repo.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	questions, err := s.Repo.FindQuestions(testID)
	if err != nil {
		return nil, err
	}

	// 空试卷照常返回，提交时才拒绝
	views := make([]model.QuestionView, len(questions))
	for i, q := range questions {
		views[i] = model.NewQuestionView(q)
	}

	return &TestDetail{Test: test, Questions: views}, nil
}

// GradeResult 一次评分的结果
type GradeResult struct {
	Percent        int     `json:"percent"`
	Passed         bool    `json:"passed"`
	Recommendation *string `json:"recommendation,omitempty"`
}

// Grade 纯函数：同样的题目和作答必然得到同样的结果。
// 没有标记正确选项的题、未作答的题都按答错计。
func Grade(questions []model.Question, answers map[uint]uint, minPassPercent int) (GradeResult, error) {
	if len(questions) == 0 {
		return GradeResult{}, util.ErrTestNoQuestions
	}

	correct := 0
	for _, q := range questions {
		var correctID uint
		for _, a := range q.Answers {
			if a.IsCorrect {
				correctID = a.ID
				break
			}
		}
		if correctID == 0 {
			continue
		}
		if chosen, ok := answers[q.ID]; ok && chosen == correctID {
			correct++
		}
	}

	percent := int(math.Round(float64(correct*100) / float64(len(questions))))

	threshold := minPassPercent
	if threshold == 0 {
		threshold = DefaultPassPercent
	}
	passed := percent >= threshold

	result := GradeResult{Percent: percent, Passed: passed}
	if !passed {
		recommendation := failRecommendation
		result.Recommendation = &recommendation
	}
	return result, nil
}

// SubmitTest 评分并在同一事务内落三条记录：结果、进度、操作日志
func (s *TestService) SubmitTest(testID, userID uint, answers map[uint]uint) (*GradeResult, error) {
	test, err := s.Repo.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	questions, err := s.Repo.FindQuestions(testID)
	if err != nil {
		return nil, err
	}

	result, err := Grade(questions, answers, test.MinPassPercent)
	if err != nil {
		return nil, err
	}

	percent := result.Percent
	meta, _ := json.Marshal(map[string]interface{}{"testId": testID, "percent": percent})

	err = s.Repo.RecordSubmission(
		&model.TestResult{UserID: userID, TestID: testID, Percent: percent, Passed: result.Passed},
		&model.StudentProgress{UserID: userID, Type: model.ProgressTest, RefID: testID, Percent: &percent},
		&model.ActivityLog{UserID: userID, Action: "test_completed", Meta: string(meta)},
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
