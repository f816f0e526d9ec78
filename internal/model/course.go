package model

// swagger:model Course
type Course struct {
	BaseModel
	Title           string  `gorm:"size:200;not null" json:"title"`
	Subtitle        string  `gorm:"size:300" json:"subtitle"`
	Subject         string  `gorm:"size:100;index" json:"subject"`
	Level           string  `gorm:"size:50;index" json:"level"`
	Price           float64 `gorm:"type:decimal(10,2);default:0" json:"price"`
	IsFree          bool    `gorm:"default:false" json:"is_free"`
	CoverURL        string  `gorm:"size:255" json:"cover_url"`
	PreviewVideoURL string  `gorm:"size:255" json:"preview_video_url"`
	Description     string  `gorm:"type:text" json:"description"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID   uint   `gorm:"not null;index" json:"course_id"`
	Title      string `gorm:"size:200;not null" json:"title"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`
	VideoURL   string `gorm:"size:255" json:"video_url"`
}

func (Lesson) TableName() string {
	return "lessons"
}
