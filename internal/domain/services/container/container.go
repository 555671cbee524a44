package container

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"amdaops-http-service/internal/domain/services"
	"amdaops-http-service/internal/infrastructure/config"
	"amdaops-http-service/pkg/logger"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	config *config.Config

	// 数据存储服务
	redisService services.InterfaceRedisService

	// 业务服务
	scheduleService services.InterfaceScheduleService
	registryService services.InterfaceRegistryService
	phraseService   services.InterfacePhraseService
	photoService    services.InterfacePhotoService
	officerService  services.InterfaceOfficerService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器，Redis 不可用时不启用短语缓存
func NewServiceContainer(cfg *config.Config) *ServiceContainer {
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{config: cfg}

	if cfg.RedisEnabled {
		redisService := services.NewRedisService(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisService.Ping(ctx); err != nil {
			logger.L().Warn("redis unavailable, facet cache disabled",
				zap.String("addr", cfg.GetRedisAddr()), zap.Error(err))
			_ = redisService.Close()
		} else {
			container.redisService = redisService
		}
	}

	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scheduleService = services.NewScheduleService(c.config)
	c.registryService = services.NewRegistryService(c.config, c.scheduleService)
	c.phraseService = services.NewPhraseService(c.config, c.registryService, c.redisService)
	c.photoService = services.NewPhotoService(c.config)
	c.officerService = services.NewOfficerService(c.config, c.photoService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "redis":
		return c.redisService
	case "schedule":
		return c.scheduleService
	case "registry":
		return c.registryService
	case "phrase":
		return c.phraseService
	case "photo":
		return c.photoService
	case "officer":
		return c.officerService
	default:
		return nil
	}
}

// Redis returns the facet cache, or nil when Redis is disabled.
func (c *ServiceContainer) Redis() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}

// Close releases external connections
func (c *ServiceContainer) Close() error {
	if r := c.Redis(); r != nil {
		return r.Close()
	}
	return nil
}
