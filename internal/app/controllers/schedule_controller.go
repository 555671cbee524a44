package controllers

import (
	"github.com/gin-gonic/gin"

	"amdaops-http-service/internal/domain/models"
	"amdaops-http-service/internal/domain/services"
	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/error/code"
	"amdaops-http-service/internal/error/response"
)

// ScheduleController 处理排班与考勤记录的请求
type ScheduleController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewScheduleController 创建一个新的排班控制器
func NewScheduleController(ctx *gin.Context, container *container.ServiceContainer) *ScheduleController {
	return &ScheduleController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleScheduleFunc 返回一个处理排班请求的Gin处理函数
func HandleScheduleFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewScheduleController(ctx, container)

		switch method {
		case "getSchedules":
			controller.GetSchedules()
		case "createSchedule":
			controller.CreateSchedule()
		case "getTimeLogs":
			controller.GetTimeLogs()
		case "createTimeLog":
			controller.CreateTimeLog()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *ScheduleController) schedules() services.InterfaceScheduleService {
	return c.Container.GetService("schedule").(services.InterfaceScheduleService)
}

// 1. GetSchedules 获取排班记录
// @Summary 获取排班
// @Tags Schedule
// @Produce json
// @Param site_prefix query string false "站点前缀"
// @Success 200 {object} SuccessResponse
// @Router /schedules [get]
func (c *ScheduleController) GetSchedules() {
	c.list(c.schedules().ListSchedules)
}

// 2. CreateSchedule 追加排班记录
// @Summary 新增排班
// @Description 记录为任意 JSON 对象，site_prefix 用于按站点过滤
// @Tags Schedule
// @Accept json
// @Produce json
// @Param schedule body map[string]interface{} true "排班记录"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule() {
	c.create(c.schedules().AddSchedule)
}

// 3. GetTimeLogs 获取考勤记录
// @Summary 获取考勤记录
// @Tags TimeLog
// @Produce json
// @Param site_prefix query string false "站点前缀"
// @Success 200 {object} SuccessResponse
// @Router /time-logs [get]
func (c *ScheduleController) GetTimeLogs() {
	c.list(c.schedules().ListTimeLogs)
}

// 4. CreateTimeLog 追加考勤记录
// @Summary 新增考勤记录
// @Tags TimeLog
// @Accept json
// @Produce json
// @Param log body map[string]interface{} true "考勤记录"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /time-logs [post]
func (c *ScheduleController) CreateTimeLog() {
	c.create(c.schedules().AddTimeLog)
}

func (c *ScheduleController) list(fn func(string) ([]models.Record, error)) {
	records, err := fn(c.Ctx.Query("site_prefix"))
	if err != nil {
		respondError(c.Ctx, err, code.ErrValidation)
		return
	}
	response.Success(c.Ctx, gin.H{
		"total": len(records),
		"data":  records,
	})
}

func (c *ScheduleController) create(fn func(models.Record) (models.Record, error)) {
	var record models.Record
	if err := c.Ctx.ShouldBindJSON(&record); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}
	saved, err := fn(record)
	if err != nil {
		respondError(c.Ctx, err, code.ErrValidation)
		return
	}
	invalidateRosterViews()
	response.Created(c.Ctx, saved)
}
