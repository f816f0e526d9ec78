package database

import (
	"fmt"
	"log"

	"kernel_school_backend/internal/config"
	"kernel_school_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB, seed *config.SeedConfig) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.Test{},
		&model.Question{},
		&model.Answer{},
		&model.Enrollment{},
		&model.TestResult{},
		&model.StudentProgress{},
		&model.HomeworkSubmission{},
		&model.Favorite{},
		&model.Message{},
		&model.ActivityLog{},
		&model.Payment{},
	)

	if err != nil {
		return err
	}

	log.Println("Database migration completed")

	// 首次启动时补一个管理员账号
	var adminCount int64
	db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&adminCount)
	if adminCount == 0 && seed.AdminEmail != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			FullName: "Administrator",
			Email:    seed.AdminEmail,
			Password: string(hash),
			Role:     model.Admin,
			Tariff:   model.TariffPremium,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
		log.Printf("Seeded admin account %s", seed.AdminEmail)
	}

	// 空目录时放几门示例课
	var courseCount int64
	db.Model(&model.Course{}).Count(&courseCount)
	if courseCount == 0 {
		demoCourses := []model.Course{
			{Title: "Математика: базовий курс", Subtitle: "Від дробів до рівнянь", Subject: "math", Level: "beginner", IsFree: true},
			{Title: "Фізика: механіка", Subtitle: "Кінематика і динаміка", Subject: "physics", Level: "intermediate", Price: 499},
			{Title: "Англійська для початківців", Subtitle: "A1-A2", Subject: "english", Level: "beginner", Price: 299},
		}
		for i := range demoCourses {
			db.Create(&demoCourses[i])
		}
	}

	return nil
}
