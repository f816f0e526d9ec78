package model

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

type Tariff string

const (
	TariffFree     Tariff = "free"
	TariffStandard Tariff = "standard"
	TariffPremium  Tariff = "premium"
)

// swagger:model User
type User struct {
	BaseModel
	FullName string   `gorm:"size:100;not null" json:"full_name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('student','admin');default:'student'" json:"role"`
	Tariff   Tariff   `gorm:"type:enum('free','standard','premium');default:'free'" json:"tariff"`
}

func (User) TableName() string {
	return "users"
}
