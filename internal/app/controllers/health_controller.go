package controllers

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"amdaops-http-service/internal/app/middleware"
	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/error/code"
	"amdaops-http-service/internal/error/response"
	"amdaops-http-service/internal/infrastructure/config"
)

var startedAt = time.Now()

// HealthController 健康检查控制器
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建健康检查控制器实例
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{Ctx: ctx, Container: container}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		case "cacheStats":
			controller.CacheStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Ping 健康检查端点
// @Summary 健康检查
// @Tags Health
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// 2. Status 数据文件与缓存状态
// @Summary 服务状态
// @Description 返回数据文件是否存在、Redis 状态与运行信息
// @Tags Health
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /health/status [get]
func (c *HealthController) Status() {
	cfg := c.Container.GetService("config").(*config.Config)

	files := gin.H{}
	for name, path := range map[string]string{
		"phrases":   cfg.PhrasesPath(),
		"registry":  cfg.RegistryPath(),
		"officers":  cfg.OfficersPath(),
		"schedules": cfg.SchedulesPath(),
		"time_logs": cfg.TimeLogsPath(),
	} {
		_, err := os.Stat(path)
		files[name] = gin.H{"path": path, "exists": err == nil}
	}

	redisStatus := "disabled"
	if r := c.Container.Redis(); r != nil {
		ctx, cancel := context.WithTimeout(c.Ctx.Request.Context(), time.Second)
		defer cancel()
		redisStatus = "ok"
		if err := r.Ping(ctx); err != nil {
			redisStatus = "error: " + err.Error()
		}
	}

	stats := middleware.CacheStats()
	response.Success(c.Ctx, gin.H{
		"status":     "healthy",
		"uptime":     time.Since(startedAt).Round(time.Second).String(),
		"goroutines": runtime.NumGoroutine(),
		"data_files": files,
		"redis":      redisStatus,
		"cache": gin.H{
			"total_items": stats["total_items"],
			"hits":        stats["hits"],
			"misses":      stats["misses"],
		},
	})
}

// 3. CacheStats 响应缓存统计
// @Summary 缓存统计
// @Tags Health
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /health/cache-stats [get]
func (c *HealthController) CacheStats() {
	response.Success(c.Ctx, middleware.CacheStats())
}
