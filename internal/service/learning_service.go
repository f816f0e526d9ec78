package service

import (
	"encoding/json"

	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/repository"
)

// progressStore 学习过程写入的最小接口
type progressStore interface {
	RecordLessonCompletion(progress *model.StudentProgress, log *model.ActivityLog) error
	SubmitHomework(submission *model.HomeworkSubmission, progress *model.StudentProgress, log *model.ActivityLog) error
}

// LearningService 报名、课时完成、作业、收藏——学习过程的记录面
type LearningService struct {
	Enrollments *repository.EnrollmentRepository
	Progress    progressStore
	Favorites   *repository.FavoriteRepository
}

func NewLearningService(
	enrollments *repository.EnrollmentRepository,
	progress progressStore,
	favorites *repository.FavoriteRepository,
) *LearningService {
	return &LearningService{
		Enrollments: enrollments,
		Progress:    progress,
		Favorites:   favorites,
	}
}

func (s *LearningService) Enroll(userID, courseID uint) error {
	return s.Enrollments.Enroll(userID, courseID)
}

// CompleteLesson 进度和操作日志成对落库，活跃度报表依赖这条日志
func (s *LearningService) CompleteLesson(userID, lessonID uint) error {
	meta, _ := json.Marshal(map[string]interface{}{"lessonId": lessonID})

	return s.Progress.RecordLessonCompletion(
		&model.StudentProgress{UserID: userID, Type: model.ProgressLesson, RefID: lessonID},
		&model.ActivityLog{UserID: userID, Action: "lesson_completed", Meta: string(meta)},
	)
}

func (s *LearningService) SubmitHomework(userID, homeworkID uint, answerText string) error {
	meta, _ := json.Marshal(map[string]interface{}{"homeworkId": homeworkID})

	return s.Progress.SubmitHomework(
		&model.HomeworkSubmission{HomeworkID: homeworkID, UserID: userID, AnswerText: answerText},
		&model.StudentProgress{UserID: userID, Type: model.ProgressHomework, RefID: homeworkID},
		&model.ActivityLog{UserID: userID, Action: "homework_submitted", Meta: string(meta)},
	)
}

// AddFavorite 服务端只加不减，客户端自己维护切换状态
func (s *LearningService) AddFavorite(userID, lessonID uint) error {
	return s.Favorites.Add(userID, lessonID)
}
