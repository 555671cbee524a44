package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "amdaops-http-service/docs"
	"amdaops-http-service/internal/app/controllers"
	"amdaops-http-service/internal/app/middleware"
	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/infrastructure/config"
	"amdaops-http-service/pkg/logger"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(cfg *config.Config, serviceContainer *container.ServiceContainer) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger.L()))

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// 照片上传大小由 PhotoService 校验，这里只限制 multipart 内存占用
	r.MaxMultipartMemory = cfg.MaxPhotoBytes + 1<<20

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, cfg, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	api.Use(middleware.IPRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))
	healthGroup.GET("/cache-stats", controllers.HandleHealthFunc(container, "cacheStats"))

	// 仪表盘
	api.GET("/dashboard", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleDashboardFunc(container, "getDashboard"))

	// 站点注册表路由
	siteGroup := api.Group("/sites")
	siteGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleSiteFunc(container, "getSites"))
	siteGroup.GET("/prefixes", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleSiteFunc(container, "getPrefixes"))
	siteGroup.GET("/:prefix", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleSiteFunc(container, "getSite"))
	siteGroup.POST("", controllers.HandleSiteFunc(container, "createSite"))
	siteGroup.PUT("/:prefix", controllers.HandleSiteFunc(container, "updateSite"))
	siteGroup.DELETE("/:prefix", controllers.HandleSiteFunc(container, "deleteSite"))

	// 安保人员路由
	officerGroup := api.Group("/officers")
	officerGroup.GET("", controllers.HandleOfficerFunc(container, "getOfficers"))
	officerGroup.GET("/:id", controllers.HandleOfficerFunc(container, "getOfficer"))
	officerGroup.GET("/:id/photo", controllers.HandleOfficerFunc(container, "getOfficerPhoto"))
	uploadLimit := middleware.CombinedRateLimiter(cfg.UploadRateLimitPerSecond, cfg.UploadRateLimitBurst)
	officerGroup.POST("", uploadLimit, controllers.HandleOfficerFunc(container, "createOfficer"))
	officerGroup.PUT("/:id", uploadLimit, controllers.HandleOfficerFunc(container, "updateOfficer"))
	officerGroup.DELETE("/:id", controllers.HandleOfficerFunc(container, "deleteOfficer"))

	// 短语库路由
	phraseGroup := api.Group("/phrases")
	phraseGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandlePhraseFunc(container, "getPhrases"))
	phraseGroup.GET("/facets", middleware.CacheByParams(5*time.Minute, "prefix"), controllers.HandlePhraseFunc(container, "getFacets"))
	phraseGroup.GET("/search", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandlePhraseFunc(container, "searchPhrases"))
	phraseGroup.POST("", controllers.HandlePhraseFunc(container, "createPhrase"))

	// 排班与考勤路由
	api.GET("/schedules", controllers.HandleScheduleFunc(container, "getSchedules"))
	api.POST("/schedules", controllers.HandleScheduleFunc(container, "createSchedule"))
	api.GET("/time-logs", controllers.HandleScheduleFunc(container, "getTimeLogs"))
	api.POST("/time-logs", controllers.HandleScheduleFunc(container, "createTimeLog"))

	// 占位页面
	pageGroup := api.Group("/pages")
	pageGroup.GET("/work-scheduling", controllers.HandlePageFunc(container, "workScheduling"))
	pageGroup.GET("/time-tracking", controllers.HandlePageFunc(container, "timeTracking"))
}
