// 手动触发数据库迁移和演示数据填充脚本
//
// 正常情况下主应用启动时（debug 模式或 -migrate 参数）会自动完成迁移。
// 此脚本仅用于手动触发，例如在 release 部署前单独准备好数据库。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"log"

	"kernel_school_backend/internal/config"
	"kernel_school_backend/pkg/database"
	"kernel_school_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	if err := database.Migrate(db, &cfg.Seed); err != nil {
		log.Fatalf("迁移失败: %v", err)
	}

	log.Println("数据库迁移和演示数据填充完成")
}
