package controllers

import (
	"github.com/gin-gonic/gin"

	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/error/code"
	"amdaops-http-service/internal/error/response"
)

// PageController 处理尚未实现的页面占位
type PageController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPageController 创建页面控制器
func NewPageController(ctx *gin.Context, container *container.ServiceContainer) *PageController {
	return &PageController{Ctx: ctx, Container: container}
}

// HandlePageFunc 返回一个处理页面请求的Gin处理函数
func HandlePageFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPageController(ctx, container)

		switch method {
		case "workScheduling":
			controller.WorkScheduling()
		case "timeTracking":
			controller.TimeTracking()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. WorkScheduling 排班页面占位
// @Summary 排班页面
// @Tags Page
// @Produce json
// @Param prefix query string false "站点前缀"
// @Success 200 {object} SuccessResponse
// @Router /pages/work-scheduling [get]
func (c *PageController) WorkScheduling() {
	c.placeholder("work_scheduling", "Work Scheduling", "Shift and calendar management will live here.")
}

// 2. TimeTracking 考勤页面占位
// @Summary 考勤页面
// @Tags Page
// @Produce json
// @Param prefix query string false "站点前缀"
// @Success 200 {object} SuccessResponse
// @Router /pages/time-tracking [get]
func (c *PageController) TimeTracking() {
	c.placeholder("time_tracking", "Time Tracking", "Time logs, metrics and KPIs will live here.")
}

func (c *PageController) placeholder(page, title, message string) {
	response.Success(c.Ctx, gin.H{
		"page":        page,
		"title":       title,
		"placeholder": true,
		"message":     message,
		"site_prefix": c.Ctx.Query("prefix"),
	})
}
