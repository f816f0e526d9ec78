package service

import (
	"strings"
	"testing"

	"kernel_school_backend/internal/model"
)

type stubProgressStore struct {
	progress    []*model.StudentProgress
	logs        []*model.ActivityLog
	submissions []*model.HomeworkSubmission
}

func (s *stubProgressStore) RecordLessonCompletion(progress *model.StudentProgress, log *model.ActivityLog) error {
	s.progress = append(s.progress, progress)
	s.logs = append(s.logs, log)
	return nil
}

func (s *stubProgressStore) SubmitHomework(submission *model.HomeworkSubmission, progress *model.StudentProgress, log *model.ActivityLog) error {
	s.submissions = append(s.submissions, submission)
	s.progress = append(s.progress, progress)
	s.logs = append(s.logs, log)
	return nil
}

// 课时完成必须同时落进度行和操作日志行，活跃度统计靠后者
func TestCompleteLessonWritesProgressAndActivity(t *testing.T) {
	store := &stubProgressStore{}
	svc := NewLearningService(nil, store, nil)

	if err := svc.CompleteLesson(7, 42); err != nil {
		t.Fatalf("complete lesson error: %v", err)
	}

	if len(store.progress) != 1 {
		t.Fatalf("progress rows = %d, want 1", len(store.progress))
	}
	p := store.progress[0]
	if p.UserID != 7 || p.Type != model.ProgressLesson || p.RefID != 42 {
		t.Errorf("progress row = %+v", p)
	}

	if len(store.logs) != 1 {
		t.Fatalf("activity rows = %d, want 1", len(store.logs))
	}
	log := store.logs[0]
	if log.UserID != 7 || log.Action != "lesson_completed" {
		t.Errorf("activity row = %+v", log)
	}
	if !strings.Contains(log.Meta, "\"lessonId\":42") {
		t.Errorf("meta = %q, want lessonId 42", log.Meta)
	}
}

func TestSubmitHomeworkWritesAllThreeRows(t *testing.T) {
	store := &stubProgressStore{}
	svc := NewLearningService(nil, store, nil)

	if err := svc.SubmitHomework(7, 9, "my answer"); err != nil {
		t.Fatalf("submit homework error: %v", err)
	}

	if len(store.submissions) != 1 || store.submissions[0].AnswerText != "my answer" {
		t.Fatalf("submissions = %+v", store.submissions)
	}
	if len(store.progress) != 1 || store.progress[0].Type != model.ProgressHomework {
		t.Fatalf("progress = %+v", store.progress)
	}
	if len(store.logs) != 1 || store.logs[0].Action != "homework_submitted" {
		t.Fatalf("logs = %+v", store.logs)
	}
}
