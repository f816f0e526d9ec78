package model

type Message struct {
	AppendOnly
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Text   string `gorm:"type:text;not null" json:"text"`
}

func (Message) TableName() string {
	return "messages"
}
