package main

import (
	"flag"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"gammabudget/config"
	"gammabudget/database"
	"gammabudget/middleware"
	"gammabudget/router"
	"gammabudget/service"
)

// @title 个人记账 API
// @version 1.0
// @description 个人财务记账后端，提供收入、支出、消费限额与到期提醒管理，以及每日提醒邮件任务
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("个人记账系统 v1.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	// 打印配置信息
	config.PrintConfig()

	// 初始化数据库
	if err := database.Init(cfg); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	// 初始化 JWT
	middleware.InitJWT(cfg)

	// 每日提醒邮件任务
	emailService := service.NewEmailService(&cfg.Email)
	alertJob, err := service.NewAlertJobService(emailService)
	if err != nil {
		log.Fatalf("装配提醒任务失败: %v", err)
	}
	c := cron.New()
	if _, err := c.AddJob(cfg.Alert.Cron, alertJob); err != nil {
		log.Fatalf("注册提醒任务失败: %v", err)
	}
	c.Start()
	defer c.Stop()

	// 设置路由
	r := router.SetupRouter(cfg)

	// 启动服务器
	log.Printf("==========================================")
	log.Printf("  💰 个人记账系统已启动")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("  提醒任务: %s", cfg.Alert.Cron)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
