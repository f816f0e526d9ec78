package model

// 唯一索引配合 insert-or-ignore 保证重复报名幂等
type Enrollment struct {
	AppendOnly
	UserID   uint `gorm:"not null;uniqueIndex:idx_enrollment_pair" json:"user_id"`
	CourseID uint `gorm:"not null;uniqueIndex:idx_enrollment_pair" json:"course_id"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

type Favorite struct {
	AppendOnly
	UserID   uint `gorm:"not null;uniqueIndex:idx_favorite_pair" json:"user_id"`
	LessonID uint `gorm:"not null;uniqueIndex:idx_favorite_pair" json:"lesson_id"`
}

func (Favorite) TableName() string {
	return "favorites"
}
