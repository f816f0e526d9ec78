package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// 正确性标记不允许出现在任何序列化输出里
func TestAnswerJSONNeverLeaksCorrectness(t *testing.T) {
	answer := Answer{QuestionID: 1, Text: "4", IsCorrect: true}
	answer.ID = 10

	data, err := json.Marshal(answer)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(data), "correct") {
		t.Fatalf("serialized answer leaks correctness: %s", data)
	}
}

func TestQuestionViewStripsCorrectness(t *testing.T) {
	q := Question{TestID: 1, Text: "2+2=?"}
	q.ID = 5

	right := Answer{QuestionID: 5, Text: "4", IsCorrect: true}
	right.ID = 51
	wrong := Answer{QuestionID: 5, Text: "5"}
	wrong.ID = 52
	q.Answers = []Answer{right, wrong}

	view := NewQuestionView(q)
	if view.ID != 5 || view.Text != "2+2=?" {
		t.Fatalf("view header mismatch: %+v", view)
	}
	if len(view.Answers) != 2 {
		t.Fatalf("answers len = %d, want 2", len(view.Answers))
	}
	if view.Answers[0].ID != 51 || view.Answers[1].ID != 52 {
		t.Fatalf("answer ids mismatch: %+v", view.Answers)
	}

	data, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(data), "correct") {
		t.Fatalf("serialized view leaks correctness: %s", data)
	}
}
