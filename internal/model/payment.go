package model

// Payment 由外部计费流程写入，本服务只读（报表）
type Payment struct {
	AppendOnly
	UserID uint    `gorm:"index" json:"user_id"`
	Amount float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status string  `gorm:"size:20;index" json:"status"`
}

func (Payment) TableName() string {
	return "payments"
}
