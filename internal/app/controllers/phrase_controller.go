package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"amdaops-http-service/internal/app/middleware"
	"amdaops-http-service/internal/domain/services"
	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/error/code"
	"amdaops-http-service/internal/error/response"
)

// InterfacePhraseController 定义短语库控制器接口
type InterfacePhraseController interface {
	GetPhrases()
	GetFacets()
	SearchPhrases()
	CreatePhrase()
}

// PhraseController 处理双语短语库相关的请求
type PhraseController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPhraseController 创建一个新的短语库控制器
func NewPhraseController(ctx *gin.Context, container *container.ServiceContainer) *PhraseController {
	return &PhraseController{
		Ctx:       ctx,
		Container: container,
	}
}

// PhraseRequest 表示新增短语请求
type PhraseRequest struct {
	Prefix   string `json:"prefix" binding:"required" example:"DEFAULT"`
	Cat      string `json:"cat" example:"Patrol"`
	Hotwords string `json:"hotwords" example:"door, exit"`
	En       string `json:"en" example:"Please keep this door closed"`
	Es       string `json:"es" example:"Por favor mantenga esta puerta cerrada"`
}

// HandlePhraseFunc 返回一个处理短语请求的Gin处理函数
func HandlePhraseFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPhraseController(ctx, container)

		switch method {
		case "getPhrases":
			controller.GetPhrases()
		case "getFacets":
			controller.GetFacets()
		case "searchPhrases":
			controller.SearchPhrases()
		case "createPhrase":
			controller.CreatePhrase()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *PhraseController) phrases() services.InterfacePhraseService {
	return c.Container.GetService("phrase").(services.InterfacePhraseService)
}

// 1. GetPhrases 分页浏览站点短语
// @Summary 浏览短语
// @Description 每页20条，可按分类过滤；prefix 为空时返回全部短语
// @Tags Phrase
// @Produce json
// @Param prefix query string false "站点前缀"
// @Param category query string false "分类"
// @Param page query int false "页码，默认为1"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /phrases [get]
func (c *PhraseController) GetPhrases() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	category := c.Ctx.Query("category")

	items, pager, err := c.phrases().ListPage(c.Ctx.Query("prefix"), category, page)
	if err != nil {
		respondError(c.Ctx, err, code.ErrPhraseInvalid)
		return
	}
	response.Success(c.Ctx, gin.H{
		"total":       pager.Total,
		"page":        pager.Page,
		"page_size":   pager.PageSize,
		"total_pages": pager.TotalPages,
		"category":    category,
		"data":        items,
	})
}

// 2. GetFacets 获取站点短语的分类与热词
// @Summary 短语分类与热词
// @Tags Phrase
// @Produce json
// @Param prefix query string false "站点前缀"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /phrases/facets [get]
func (c *PhraseController) GetFacets() {
	facets, err := c.phrases().Facets(c.Ctx.Query("prefix"))
	if err != nil {
		respondError(c.Ctx, err, code.ErrPhraseInvalid)
		return
	}
	response.Success(c.Ctx, facets)
}

// 3. SearchPhrases 搜索短语
// @Summary 搜索短语
// @Description 按分类和热词搜索；custom 非空时优先于 hotword，匹配不区分大小写
// @Tags Phrase
// @Produce json
// @Param prefix query string false "站点前缀"
// @Param category query string false "分类"
// @Param hotword query string false "热词"
// @Param custom query string false "自定义热词"
// @Param limit query int false "结果数量 1-50，默认为10"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /phrases/search [get]
func (c *PhraseController) SearchPhrases() {
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	q := services.SearchQuery{
		Category: c.Ctx.Query("category"),
		Hotword:  c.Ctx.Query("hotword"),
		Custom:   c.Ctx.Query("custom"),
		Limit:    limit,
	}

	results, err := c.phrases().Search(c.Ctx.Query("prefix"), q)
	if err != nil {
		respondError(c.Ctx, err, code.ErrPhraseInvalid)
		return
	}
	response.Success(c.Ctx, gin.H{
		"total": len(results),
		"limit": services.ClampLimit(limit),
		"data":  results,
	})
}

// 4. CreatePhrase 为站点新增短语
// @Summary 新增短语
// @Description 站点字段从注册表复制，热词按逗号拆分并转为小写
// @Tags Phrase
// @Accept json
// @Produce json
// @Param phrase body PhraseRequest true "短语信息"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /phrases [post]
func (c *PhraseController) CreatePhrase() {
	var req PhraseRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	phrase, err := c.phrases().AddPhrase(req.Prefix, services.PhraseInput{
		Cat:      req.Cat,
		Hotwords: req.Hotwords,
		En:       req.En,
		Es:       req.Es,
	})
	if err != nil {
		respondError(c.Ctx, err, code.ErrPhraseInvalid)
		return
	}
	middleware.PurgeCacheByPrefix("/api/phrases")
	response.Created(c.Ctx, phrase)
}
