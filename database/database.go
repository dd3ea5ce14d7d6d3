package database

import (
	"fmt"
	"log"

	"gammabudget/config"
	"gammabudget/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.IncomingCategory{},
		&models.RevenueCategory{},
		&models.Incoming{},
		&models.Revenue{},
		&models.Limit{},
		&models.Alert{},
	); err != nil {
		return err
	}

	// 初始化默认收入类别（仅当表为空时）
	var incomingCatCount int64
	DB.Model(&models.IncomingCategory{}).Count(&incomingCatCount)
	if incomingCatCount == 0 {
		defaultIncomingCats := []models.IncomingCategory{
			{Name: "工资", Description: "固定工作收入", Image: "/media/icons/salary.png"},
			{Name: "投资", Description: "理财与投资收益", Image: "/media/icons/investment.png"},
			{Name: "兼职", Description: "兼职与副业收入", Image: "/media/icons/parttime.png"},
			{Name: "其他", Description: "其他收入", Image: "/media/icons/other.png"},
		}
		_ = DB.Create(&defaultIncomingCats).Error
	}

	// 初始化默认支出类别（仅当表为空时）
	var revenueCatCount int64
	DB.Model(&models.RevenueCategory{}).Count(&revenueCatCount)
	if revenueCatCount == 0 {
		defaultRevenueCats := []models.RevenueCategory{
			{Name: "餐饮", Description: "一日三餐与外卖", Image: "/media/icons/food.png"},
			{Name: "交通", Description: "通勤与出行", Image: "/media/icons/transport.png"},
			{Name: "住房", Description: "房租与物业", Image: "/media/icons/housing.png"},
			{Name: "购物", Description: "日用品与网购", Image: "/media/icons/shopping.png"},
			{Name: "娱乐", Description: "休闲与娱乐", Image: "/media/icons/entertainment.png"},
			{Name: "教育", Description: "学习与培训", Image: "/media/icons/education.png"},
			{Name: "医疗", Description: "就医与药品", Image: "/media/icons/medical.png"},
			{Name: "其他", Description: "其他支出", Image: "/media/icons/other.png"},
		}
		_ = DB.Create(&defaultRevenueCats).Error
	}

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
