package model

type ActivityLog struct {
	AppendOnly
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Action string `gorm:"size:100;not null" json:"action"`
	Meta   string `gorm:"type:json" json:"meta"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
