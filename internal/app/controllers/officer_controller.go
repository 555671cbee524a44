package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"amdaops-http-service/internal/domain/services"
	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/error/code"
	"amdaops-http-service/internal/error/response"
)

// InterfaceOfficerController 定义安保人员控制器接口
type InterfaceOfficerController interface {
	GetOfficers()
	GetOfficer()
	GetOfficerPhoto()
	CreateOfficer()
	UpdateOfficer()
	DeleteOfficer()
}

// OfficerController 处理安保人员相关的请求
type OfficerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOfficerController 创建一个新的安保人员控制器
func NewOfficerController(ctx *gin.Context, container *container.ServiceContainer) *OfficerController {
	return &OfficerController{
		Ctx:       ctx,
		Container: container,
	}
}

// OfficerRequest 表示安保人员请求，支持 multipart 表单和 JSON
type OfficerRequest struct {
	Name        string `form:"name" json:"name" example:"Maria Lopez"`
	Email       string `form:"email" json:"email" example:"maria@example.com"`
	Phone       string `form:"phone" json:"phone" example:"+1 555 123 4567"`
	Status      string `form:"status" json:"status" example:"Active"` // Active, Inactive
	RemovePhoto bool   `form:"-" json:"remove_photo"`
}

// HandleOfficerFunc 返回一个处理安保人员请求的Gin处理函数
func HandleOfficerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOfficerController(ctx, container)

		switch method {
		case "getOfficers":
			controller.GetOfficers()
		case "getOfficer":
			controller.GetOfficer()
		case "getOfficerPhoto":
			controller.GetOfficerPhoto()
		case "createOfficer":
			controller.CreateOfficer()
		case "updateOfficer":
			controller.UpdateOfficer()
		case "deleteOfficer":
			controller.DeleteOfficer()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *OfficerController) officers() services.InterfaceOfficerService {
	return c.Container.GetService("officer").(services.InterfaceOfficerService)
}

// 1. GetOfficers 获取安保人员列表
// @Summary 获取安保人员
// @Description 返回所有安保人员及头像信息
// @Tags Officer
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /officers [get]
func (c *OfficerController) GetOfficers() {
	svc := c.officers()
	officers, err := svc.ListOfficers()
	if err != nil {
		respondError(c.Ctx, err, code.ErrOfficerInvalid)
		return
	}

	views := make([]services.OfficerView, 0, len(officers))
	active := 0
	for _, o := range officers {
		views = append(views, svc.View(o))
		if o.IsActive() {
			active++
		}
	}
	response.Success(c.Ctx, gin.H{
		"total":  len(views),
		"active": active,
		"data":   views,
	})
}

// 2. GetOfficer 获取单个安保人员
// @Summary 获取安保人员详情
// @Tags Officer
// @Produce json
// @Param id path string true "安保人员ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /officers/{id} [get]
func (c *OfficerController) GetOfficer() {
	svc := c.officers()
	officer, err := svc.GetOfficer(c.Ctx.Param("id"))
	if err != nil {
		respondError(c.Ctx, err, code.ErrOfficerInvalid)
		return
	}
	response.Success(c.Ctx, svc.View(*officer))
}

// 3. GetOfficerPhoto 获取安保人员照片
// @Summary 获取安保人员照片
// @Tags Officer
// @Produce png
// @Param id path string true "安保人员ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /officers/{id}/photo [get]
func (c *OfficerController) GetOfficerPhoto() {
	officer, err := c.officers().GetOfficer(c.Ctx.Param("id"))
	if err != nil {
		respondError(c.Ctx, err, code.ErrOfficerInvalid)
		return
	}
	photos := c.Container.GetService("photo").(services.InterfacePhotoService)
	path, err := photos.Resolve(officer.PhotoPath)
	if err != nil {
		respondError(c.Ctx, services.ErrPhotoNotFound, code.ErrOfficerInvalid)
		return
	}
	c.Ctx.Header("Content-Type", "image/png")
	c.Ctx.File(path)
}

// 4. CreateOfficer 创建安保人员
// @Summary 创建安保人员
// @Description 需要姓名以及邮箱或电话之一，可附带照片 (jpg, jpeg, png, webp)
// @Tags Officer
// @Accept mpfd
// @Produce json
// @Param name formData string true "姓名"
// @Param email formData string false "邮箱"
// @Param phone formData string false "电话"
// @Param photo formData file false "照片"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /officers [post]
func (c *OfficerController) CreateOfficer() {
	var req OfficerRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request: "+err.Error(), nil)
		return
	}
	photo, cleanup, ok := c.photoUpload()
	if !ok {
		return
	}
	defer cleanup()

	svc := c.officers()
	officer, err := svc.CreateOfficer(req.input(), photo)
	if err != nil {
		respondError(c.Ctx, err, code.ErrOfficerInvalid)
		return
	}
	invalidateRosterViews()
	response.Created(c.Ctx, svc.View(*officer))
}

// 5. UpdateOfficer 更新安保人员
// @Summary 更新安保人员
// @Description 更新资料；remove_photo 删除当前照片，上传新照片则替换
// @Tags Officer
// @Accept mpfd
// @Produce json
// @Param id path string true "安保人员ID"
// @Param name formData string true "姓名"
// @Param email formData string false "邮箱"
// @Param phone formData string false "电话"
// @Param status formData string false "状态 (Active, Inactive)"
// @Param remove_photo formData bool false "删除照片"
// @Param photo formData file false "照片"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /officers/{id} [put]
func (c *OfficerController) UpdateOfficer() {
	var req OfficerRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request: "+err.Error(), nil)
		return
	}
	photo, cleanup, ok := c.photoUpload()
	if !ok {
		return
	}
	defer cleanup()

	svc := c.officers()
	removePhoto := req.RemovePhoto || parseBool(c.Ctx.PostForm("remove_photo"))
	officer, err := svc.UpdateOfficer(c.Ctx.Param("id"), req.input(), photo, removePhoto)
	if err != nil {
		respondError(c.Ctx, err, code.ErrOfficerInvalid)
		return
	}
	invalidateRosterViews()
	response.Success(c.Ctx, svc.View(*officer))
}

// 6. DeleteOfficer 删除安保人员及其照片
// @Summary 删除安保人员
// @Tags Officer
// @Produce json
// @Param id path string true "安保人员ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /officers/{id} [delete]
func (c *OfficerController) DeleteOfficer() {
	id := c.Ctx.Param("id")
	if err := c.officers().DeleteOfficer(id); err != nil {
		respondError(c.Ctx, err, code.ErrOfficerInvalid)
		return
	}
	invalidateRosterViews()
	response.Success(c.Ctx, gin.H{"id": id})
}

// photoUpload 读取可选的 photo 文件字段
func (c *OfficerController) photoUpload() (*services.PhotoUpload, func(), bool) {
	noop := func() {}
	header, err := c.Ctx.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, true
	}
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid photo upload: "+err.Error(), nil)
		return nil, noop, false
	}
	f, err := header.Open()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid photo upload: "+err.Error(), nil)
		return nil, noop, false
	}
	return &services.PhotoUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Reader:   f,
	}, func() { f.Close() }, true
}

func (r OfficerRequest) input() services.OfficerInput {
	return services.OfficerInput{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Status: r.Status,
	}
}

// parseBool 解析表单中的布尔值，兼容 on/yes
func parseBool(v string) bool {
	switch v {
	case "on", "yes", "Yes", "YES":
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}
