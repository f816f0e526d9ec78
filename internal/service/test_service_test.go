package service

import (
	"errors"
	"testing"

	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/util"
)

func makeQuestion(id, correctID uint, extraIDs ...uint) model.Question {
	q := model.Question{}
	q.ID = id
	q.Answers = append(q.Answers, model.Answer{Text: "correct", IsCorrect: true})
	q.Answers[0].ID = correctID
	for _, aid := range extraIDs {
		a := model.Answer{Text: "wrong"}
		a.ID = aid
		q.Answers = append(q.Answers, a)
	}
	return q
}

func TestGradeNoQuestions(t *testing.T) {
	_, err := Grade(nil, map[uint]uint{}, 0)
	if !errors.Is(err, util.ErrTestNoQuestions) {
		t.Fatalf("expected ErrTestNoQuestions, got %v", err)
	}
}

func TestGradeRounding(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, 11, 12),
		makeQuestion(2, 21, 22),
		makeQuestion(3, 31, 32),
	}

	tests := []struct {
		name        string
		answers     map[uint]uint
		wantPercent int
		wantPassed  bool
	}{
		{"one of three", map[uint]uint{1: 11, 2: 22, 3: 32}, 33, false},
		{"two of three", map[uint]uint{1: 11, 2: 21, 3: 32}, 67, true},
		{"all correct", map[uint]uint{1: 11, 2: 21, 3: 31}, 100, true},
		{"none correct", map[uint]uint{1: 12, 2: 22, 3: 32}, 0, false},
		{"unanswered counts as wrong", map[uint]uint{1: 11}, 33, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Grade(questions, tt.answers, 0)
			if err != nil {
				t.Fatalf("grade error: %v", err)
			}
			if result.Percent != tt.wantPercent {
				t.Errorf("percent = %d, want %d", result.Percent, tt.wantPercent)
			}
			if result.Passed != tt.wantPassed {
				t.Errorf("passed = %v, want %v", result.Passed, tt.wantPassed)
			}
		})
	}
}

func TestGradeThreshold(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, 11),
		makeQuestion(2, 21),
	}
	// 50%
	answers := map[uint]uint{1: 11, 2: 99}

	tests := []struct {
		name           string
		minPassPercent int
		wantPassed     bool
	}{
		{"default threshold 60", 0, false},
		{"explicit 50 passes at boundary", 50, true},
		{"explicit 51 fails", 51, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Grade(questions, answers, tt.minPassPercent)
			if err != nil {
				t.Fatalf("grade error: %v", err)
			}
			if result.Passed != tt.wantPassed {
				t.Errorf("passed = %v, want %v (percent %d)", result.Passed, tt.wantPassed, result.Percent)
			}
		})
	}
}

func TestGradeRecommendationOnlyOnFail(t *testing.T) {
	questions := []model.Question{makeQuestion(1, 11)}

	failed, err := Grade(questions, map[uint]uint{1: 99}, 0)
	if err != nil {
		t.Fatalf("grade error: %v", err)
	}
	if failed.Recommendation == nil || *failed.Recommendation == "" {
		t.Fatal("failed attempt must carry a recommendation")
	}

	passed, err := Grade(questions, map[uint]uint{1: 11}, 0)
	if err != nil {
		t.Fatalf("grade error: %v", err)
	}
	if passed.Recommendation != nil {
		t.Fatalf("passed attempt must not carry a recommendation, got %q", *passed.Recommendation)
	}
}

func TestGradeDeterministic(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, 11, 12),
		makeQuestion(2, 21, 22),
		makeQuestion(3, 31, 32),
	}
	answers := map[uint]uint{1: 11, 2: 22, 3: 31}

	first, err := Grade(questions, answers, 60)
	if err != nil {
		t.Fatalf("grade error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Grade(questions, answers, 60)
		if err != nil {
			t.Fatalf("grade error: %v", err)
		}
		if again.Percent != first.Percent || again.Passed != first.Passed {
			t.Fatalf("run %d: got %d/%v, want %d/%v", i, again.Percent, again.Passed, first.Percent, first.Passed)
		}
	}
}
