package controllers

import (
	"github.com/gin-gonic/gin"

	"amdaops-http-service/internal/domain/models"
	"amdaops-http-service/internal/domain/services"
	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/error/code"
	"amdaops-http-service/internal/error/response"
)

// DashboardController 提供站点选择器与快速统计
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController 创建仪表盘控制器
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{Ctx: ctx, Container: container}
}

// HandleDashboardFunc 返回一个处理仪表盘请求的Gin处理函数
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getDashboard":
			controller.GetDashboard()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetDashboard 获取站点选择器数据与快速统计
// @Summary 仪表盘
// @Description 返回所有站点前缀、当前站点摘要、在岗人员数与排班总数
// @Tags Dashboard
// @Produce json
// @Param prefix query string false "当前站点前缀，默认为第一个站点"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard() {
	registry := c.Container.GetService("registry").(services.InterfaceRegistryService)
	officers := c.Container.GetService("officer").(services.InterfaceOfficerService)
	schedules := c.Container.GetService("schedule").(services.InterfaceScheduleService)

	sites, err := registry.ListSites()
	if err != nil {
		respondError(c.Ctx, err, code.ErrSiteInvalid)
		return
	}

	prefixes := make([]string, 0, len(sites))
	for _, s := range sites {
		prefixes = append(prefixes, s.Prefix)
	}

	selected := c.Ctx.Query("prefix")
	var site *models.Site
	if selected == "" && len(sites) > 0 {
		site = &sites[0]
	} else {
		for i := range sites {
			if sites[i].Prefix == selected {
				site = &sites[i]
				break
			}
		}
		if site == nil {
			respondError(c.Ctx, services.ErrSiteNotFound, code.ErrSiteInvalid)
			return
		}
	}

	active, err := officers.CountActive()
	if err != nil {
		respondError(c.Ctx, err, code.ErrOfficerInvalid)
		return
	}
	totalSchedules, err := schedules.CountSchedules()
	if err != nil {
		respondError(c.Ctx, err, code.ErrValidation)
		return
	}

	var summary map[string]string
	if site != nil {
		summary = site.Summary()
		selected = site.Prefix
	}
	response.Success(c.Ctx, gin.H{
		"prefixes":        prefixes,
		"selected_prefix": selected,
		"site":            summary,
		"stats": gin.H{
			"active_officers": active,
			"total_schedules": totalSchedules,
		},
	})
}
