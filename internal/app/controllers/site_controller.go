package controllers

import (
	"github.com/gin-gonic/gin"

	"amdaops-http-service/internal/domain/models"
	"amdaops-http-service/internal/domain/services"
	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/error/code"
	"amdaops-http-service/internal/error/response"
)

// InterfaceSiteController 定义站点控制器接口
type InterfaceSiteController interface {
	GetSites()
	GetPrefixes()
	GetSite()
	CreateSite()
	UpdateSite()
	DeleteSite()
}

// SiteController 处理站点注册表相关的请求
type SiteController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSiteController 创建一个新的站点控制器
func NewSiteController(ctx *gin.Context, container *container.ServiceContainer) *SiteController {
	return &SiteController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSiteFunc 返回一个处理站点请求的Gin处理函数
func HandleSiteFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSiteController(ctx, container)

		switch method {
		case "getSites":
			controller.GetSites()
		case "getPrefixes":
			controller.GetPrefixes()
		case "getSite":
			controller.GetSite()
		case "createSite":
			controller.CreateSite()
		case "updateSite":
			controller.UpdateSite()
		case "deleteSite":
			controller.DeleteSite()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *SiteController) registry() services.InterfaceRegistryService {
	return c.Container.GetService("registry").(services.InterfaceRegistryService)
}

// 1. GetSites 获取所有站点
// @Summary 获取所有站点
// @Description 读取并规范化站点注册表
// @Tags Site
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /sites [get]
func (c *SiteController) GetSites() {
	sites, err := c.registry().ListSites()
	if err != nil {
		respondError(c.Ctx, err, code.ErrSiteInvalid)
		return
	}
	response.Success(c.Ctx, gin.H{
		"total": len(sites),
		"data":  sites,
	})
}

// 2. GetPrefixes 获取站点前缀列表
// @Summary 获取站点前缀
// @Tags Site
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /sites/prefixes [get]
func (c *SiteController) GetPrefixes() {
	prefixes, err := c.registry().ListPrefixes()
	if err != nil {
		respondError(c.Ctx, err, code.ErrSiteInvalid)
		return
	}
	response.Success(c.Ctx, prefixes)
}

// 3. GetSite 获取单个站点
// @Summary 获取站点详情
// @Tags Site
// @Produce json
// @Param prefix path string true "站点前缀"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /sites/{prefix} [get]
func (c *SiteController) GetSite() {
	site, err := c.registry().GetSite(c.Ctx.Param("prefix"))
	if err != nil {
		respondError(c.Ctx, err, code.ErrSiteInvalid)
		return
	}
	response.Success(c.Ctx, site)
}

// 4. CreateSite 保存站点，已存在的前缀会被更新
// @Summary 保存站点
// @Description 按前缀新增或更新站点。未建模字段按 merge-patch 合并：未提交的保留，值为 null 的删除
// @Tags Site
// @Accept json
// @Produce json
// @Param site body models.Site true "站点信息"
// @Success 200 {object} SuccessResponse
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /sites [post]
func (c *SiteController) CreateSite() {
	c.save("")
}

// 5. UpdateSite 更新站点，请求体中的前缀不同则视为重命名
// @Summary 更新站点
// @Description 未建模字段按 merge-patch 合并：未提交的保留，值为 null 的删除
// @Tags Site
// @Accept json
// @Produce json
// @Param prefix path string true "原站点前缀"
// @Param site body models.Site true "站点信息"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sites/{prefix} [put]
func (c *SiteController) UpdateSite() {
	c.save(c.Ctx.Param("prefix"))
}

func (c *SiteController) save(originalPrefix string) {
	var site models.Site
	if err := c.Ctx.ShouldBindJSON(&site); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}
	if site.Prefix == "" && originalPrefix != "" {
		site.Prefix = originalPrefix
	}

	saved, created, err := c.registry().SaveSite(originalPrefix, site)
	if err != nil {
		respondError(c.Ctx, err, code.ErrSiteInvalid)
		return
	}
	invalidateSiteViews(c.Container)

	if created {
		response.Created(c.Ctx, saved)
		return
	}
	response.Success(c.Ctx, saved)
}

// 6. DeleteSite 删除站点及其排班
// @Summary 删除站点
// @Description 删除站点并移除其所有排班记录
// @Tags Site
// @Produce json
// @Param prefix path string true "站点前缀"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /sites/{prefix} [delete]
func (c *SiteController) DeleteSite() {
	prefix := c.Ctx.Param("prefix")
	removed, err := c.registry().DeleteSite(prefix)
	if err != nil {
		respondError(c.Ctx, err, code.ErrSiteInvalid)
		return
	}
	invalidateSiteViews(c.Container)
	response.Success(c.Ctx, gin.H{
		"prefix":            prefix,
		"removed_schedules": removed,
	})
}
