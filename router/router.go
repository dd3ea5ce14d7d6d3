package router

import (
	"time"

	"gammabudget/api"
	"gammabudget/config"
	_ "gammabudget/docs"
	"gammabudget/middleware"
	"gammabudget/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	emailService := service.NewEmailService(&cfg.Email)

	incomingHandler := api.NewIncomingHandler()
	revenueHandler := api.NewRevenueHandler()
	limitHandler := api.NewLimitHandler()
	alertHandler := api.NewAlertHandler(emailService, emailService)
	categoryHandler := api.NewCategoryHandler()
	exportHandler := api.NewExportHandler()

	// API v1 路由组
	v1 := r.Group("/api/v1")

	// JWT 可选：网关已认证的部署形态下关闭
	if cfg.JWT.Enabled {
		middleware.InitJWT(cfg)
		v1.Use(middleware.JWTAuth())
	}

	// 写接口限流可选
	var writeLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		writeLimit = middleware.WriteRateLimit(
			cfg.RateLimit.MaxRequests,
			time.Duration(cfg.RateLimit.WindowSecs)*time.Second,
		)
	} else {
		writeLimit = func(c *gin.Context) { c.Next() }
	}

	{
		// 收入记录
		incoming := v1.Group("/incoming")
		{
			incoming.GET("/list/:user_id/", incomingHandler.List)
			incoming.GET("/detail/:user_id/:id/", incomingHandler.Detail)
			incoming.GET("/list-categories/", categoryHandler.ListIncomingCategories)
			incoming.POST("/create/:user_id/", writeLimit, incomingHandler.Create)
			incoming.PUT("/update/:user_id/:id/", writeLimit, incomingHandler.Update)
			incoming.PATCH("/update/:user_id/:id/", writeLimit, incomingHandler.Update)
			incoming.DELETE("/delete/:user_id/:id/", writeLimit, incomingHandler.Delete)
		}

		// 支出记录
		revenue := v1.Group("/revenue")
		{
			revenue.GET("/list/:user_id/", revenueHandler.List)
			revenue.GET("/detail/:user_id/:id/", revenueHandler.Detail)
			revenue.GET("/list-categories/", categoryHandler.ListRevenueCategories)
			revenue.POST("/create/:user_id/", writeLimit, revenueHandler.Create)
			revenue.PUT("/update/:user_id/:id/", writeLimit, revenueHandler.Update)
			revenue.PATCH("/update/:user_id/:id/", writeLimit, revenueHandler.Update)
			revenue.DELETE("/delete/:user_id/:id/", writeLimit, revenueHandler.Delete)
		}

		// 消费限额
		limit := v1.Group("/limit")
		{
			limit.GET("/list/:user_id/", limitHandler.List)
			limit.POST("/create/:user_id/", writeLimit, limitHandler.Create)
			limit.PUT("/update/:user_id/:id/", writeLimit, limitHandler.Update)
			limit.PATCH("/update/:user_id/:id/", writeLimit, limitHandler.Update)
			limit.DELETE("/delete/:user_id/:id/", writeLimit, limitHandler.Delete)
		}

		// 到期提醒
		alert := v1.Group("/alert")
		{
			alert.GET("/list/:user_id/", alertHandler.List)
			alert.POST("/create/:user_id/", writeLimit, alertHandler.Create)
			alert.PUT("/update/:user_id/:id/", writeLimit, alertHandler.Update)
			alert.PATCH("/update/:user_id/:id/", writeLimit, alertHandler.Update)
			alert.DELETE("/delete/:user_id/:id/", writeLimit, alertHandler.Delete)
			alert.POST("/trigger-email/", alertHandler.TriggerEmail)
		}

		// 导出
		export := v1.Group("/export")
		{
			export.GET("/revenue/csv/:user_id/", exportHandler.ExportCSV)
			export.GET("/revenue/excel/:user_id/", exportHandler.ExportExcel)
			export.GET("/revenue/json/:user_id/", exportHandler.ExportJSON)
			export.GET("/incoming/csv/:user_id/", exportHandler.ExportIncomingCSV)
			export.GET("/incoming/excel/:user_id/", exportHandler.ExportIncomingExcel)
			export.GET("/incoming/json/:user_id/", exportHandler.ExportIncomingJSON)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
