package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gammabudget/database"
	"gammabudget/domain/usecase"
	"gammabudget/repository"
)

// AlertHandler 到期提醒处理器
type AlertHandler struct {
	create  *usecase.AlertCreateUseCase
	list    *usecase.AlertListUseCase
	update  *usecase.AlertUpdateUseCase
	delete  *usecase.AlertDeleteUseCase
	trigger *usecase.AlertSendEmailUseCase
}

// NewAlertHandler 装配到期提醒处理器。notifier 为创建成功后的
// 通知端口，可为 nil；sender 供手动触发批处理的端点使用。
func NewAlertHandler(notifier usecase.AlertCreatedNotifier, sender usecase.AlertEmailSender) *AlertHandler {
	repo := repository.NewAlertRepository(database.DB)
	return &AlertHandler{
		create:  mustUseCase(usecase.NewAlertCreateUseCase(repo, notifier, usecase.NewDataOutput)),
		list:    mustUseCase(usecase.NewAlertListUseCase(repo, usecase.NewDataOutput)),
		update:  mustUseCase(usecase.NewAlertUpdateUseCase(repo, usecase.NewDataOutput)),
		delete:  mustUseCase(usecase.NewAlertDeleteUseCase(repo, usecase.NewDataOutput)),
		trigger: mustUseCase(usecase.NewAlertSendEmailUseCase(repo, sender, usecase.NewDataOutput)),
	}
}

type CreateAlertRequest struct {
	UserEmail string `json:"user_email" binding:"required,email" example:"user@example.com"`
	Revenue   string `json:"revenue" binding:"required,uuid"`
	Message   string `json:"message" binding:"required" example:"房租即将到期"`
	AlertDate string `json:"alert_date" binding:"required" example:"2024-05-10"`
}

func (r *CreateAlertRequest) toData() (usecase.AlertCreateData, error) {
	alertDate, err := parseDate("alert_date", r.AlertDate)
	if err != nil {
		return usecase.AlertCreateData{}, err
	}
	return usecase.AlertCreateData{
		UserEmail: r.UserEmail,
		RevenueID: uuid.MustParse(r.Revenue),
		Message:   r.Message,
		AlertDate: alertDate,
	}, nil
}

type UpdateAlertRequest struct {
	UserEmail *string `json:"user_email" binding:"omitempty,email"`
	Revenue   *string `json:"revenue" binding:"omitempty,uuid"`
	Message   *string `json:"message"`
	AlertDate *string `json:"alert_date"`
}

func (r *UpdateAlertRequest) toData() (usecase.AlertUpdateData, error) {
	alertDate, err := parseOptionalDate("alert_date", r.AlertDate)
	if err != nil {
		return usecase.AlertUpdateData{}, err
	}
	data := usecase.AlertUpdateData{
		UserEmail: r.UserEmail,
		Message:   r.Message,
		AlertDate: alertDate,
	}
	if r.Revenue != nil {
		revenueID := uuid.MustParse(*r.Revenue)
		data.RevenueID = &revenueID
	}
	return data, nil
}

// Create 创建到期提醒
// @Summary 创建到期提醒
// @Description 为指定用户的支出记录创建到期提醒
// @Tags 提醒
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param request body CreateAlertRequest true "提醒信息"
// @Success 200 {object} map[string]interface{} "创建成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 404 {object} map[string]interface{} "支出记录不存在"
// @Router /api/v1/alert/create/{user_id}/ [post]
func (h *AlertHandler) Create(c *gin.Context) {
	CreateDispatcher[CreateAlertRequest]{
		Execute: func(userID int64, req CreateAlertRequest) (usecase.Output, error) {
			data, err := req.toData()
			if err != nil {
				return nil, err
			}
			return h.create.Execute(userID, data)
		},
	}.Handle(c)
}

// List 获取到期提醒列表
// @Summary 获取到期提醒列表
// @Description 获取指定用户的全部到期提醒
// @Tags 提醒
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {array} map[string]interface{} "获取成功"
// @Router /api/v1/alert/list/{user_id}/ [get]
func (h *AlertHandler) List(c *gin.Context) {
	GetDispatcher{
		Invoke: func(c *gin.Context) (usecase.Output, error) {
			userID, err := pathUserID(c)
			if err != nil {
				return nil, err
			}
			return h.list.Execute(userID)
		},
	}.Handle(c)
}

// Update 更新到期提醒
// @Summary 更新到期提醒
// @Description 部分更新指定用户的到期提醒，未提供的字段保持原值
// @Tags 提醒
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path string true "记录ID"
// @Param request body UpdateAlertRequest true "更新字段"
// @Success 200 {object} map[string]interface{} "更新成功"
// @Failure 404 {object} map[string]interface{} "记录不存在"
// @Router /api/v1/alert/update/{user_id}/{id}/ [put]
func (h *AlertHandler) Update(c *gin.Context) {
	UpdateDispatcher[UpdateAlertRequest]{
		Execute: func(userID int64, id uuid.UUID, req UpdateAlertRequest) (usecase.Output, error) {
			data, err := req.toData()
			if err != nil {
				return nil, err
			}
			return h.update.Execute(userID, id, data)
		},
	}.Handle(c)
}

// Delete 删除到期提醒
// @Summary 删除到期提醒
// @Description 删除指定用户的到期提醒
// @Tags 提醒
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path string true "记录ID"
// @Success 200 {object} map[string]interface{} "删除成功"
// @Failure 404 {object} map[string]interface{} "记录不存在"
// @Router /api/v1/alert/delete/{user_id}/{id}/ [delete]
func (h *AlertHandler) Delete(c *gin.Context) {
	DeleteDispatcher{
		Execute: h.delete.Execute,
	}.Handle(c)
}

// TriggerEmail 手动触发提醒邮件批处理
// @Summary 手动触发提醒邮件批处理
// @Description 立即发送今天到期的全部提醒邮件，返回处理计数
// @Tags 提醒
// @Produce json
// @Success 200 {object} map[string]interface{} "触发成功"
// @Router /api/v1/alert/trigger-email/ [post]
func (h *AlertHandler) TriggerEmail(c *gin.Context) {
	out, err := h.trigger.Execute(time.Now())
	if err != nil {
		renderError(c, err)
		return
	}
	renderOutput(c, out)
}
