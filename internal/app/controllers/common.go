package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"amdaops-http-service/internal/app/middleware"
	"amdaops-http-service/internal/domain/services"
	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/error/code"
	"amdaops-http-service/internal/error/response"
	"amdaops-http-service/pkg/logger"
)

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"101000"`
	Message string      `json:"message" example:"site not found"`
	Data    interface{} `json:"data"`
}

// SuccessResponse 表示成功响应
type SuccessResponse struct {
	Code    int         `json:"code" example:"100000"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data"`
}

// 业务错误到错误码的映射
var errorCodes = []struct {
	err  error
	code int
}{
	{services.ErrSiteNotFound, code.ErrSiteNotFound},
	{services.ErrOfficerNotFound, code.ErrOfficerNotFound},
	{services.ErrPhotoNotFound, code.ErrPhotoNotFound},
	{services.ErrPhotoTooLarge, code.ErrPhotoTooLarge},
	{services.ErrPhotoUnsupported, code.ErrPhotoUnsupported},
	{services.ErrPhraseBankMissing, code.ErrPhraseBankMissing},
	{services.ErrPhraseBankInvalid, code.ErrPhraseBankInvalid},
}

// respondError 将服务层错误写成统一响应，校验错误使用 invalidCode
func respondError(ctx *gin.Context, err error, invalidCode int) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		response.FailWithMessage(ctx, invalidCode, verr.Error(), gin.H{"field": verr.Field})
		return
	}
	for _, m := range errorCodes {
		if errors.Is(err, m.err) {
			response.FailWithMessage(ctx, m.code, err.Error(), nil)
			return
		}
	}

	logger.L().Error("request failed",
		zap.String("path", ctx.Request.URL.Path), zap.Error(err))
	response.FailWithMessage(ctx, code.ErrStorage, code.GetMessage(code.ErrStorage)+": "+err.Error(), nil)
}

// invalidateSiteViews 清除依赖站点或短语数据的响应缓存与 Redis 分面缓存
func invalidateSiteViews(c *container.ServiceContainer) {
	for _, prefix := range []string{"/api/sites", "/api/phrases", "/api/dashboard"} {
		middleware.PurgeCacheByPrefix(prefix)
	}
	if r := c.Redis(); r != nil {
		if err := r.InvalidateFacets(); err != nil {
			logger.L().Debug("facet cache invalidation skipped", zap.Error(err))
		}
	}
}

// invalidateRosterViews 清除人员和排班相关的响应缓存
func invalidateRosterViews() {
	middleware.PurgeCacheByPrefix("/api/dashboard")
}
