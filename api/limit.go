package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gammabudget/database"
	"gammabudget/domain/usecase"
	"gammabudget/repository"
)

// LimitHandler 消费限额处理器
type LimitHandler struct {
	create *usecase.LimitCreateUseCase
	list   *usecase.LimitListUseCase
	update *usecase.LimitUpdateUseCase
	delete *usecase.LimitDeleteUseCase
}

// NewLimitHandler 装配消费限额处理器
func NewLimitHandler() *LimitHandler {
	repo := repository.NewLimitRepository(database.DB)
	return &LimitHandler{
		create: mustUseCase(usecase.NewLimitCreateUseCase(repo, usecase.NewDataOutput)),
		list:   mustUseCase(usecase.NewLimitListUseCase(repo, usecase.NewDataOutput)),
		update: mustUseCase(usecase.NewLimitUpdateUseCase(repo, usecase.NewDataOutput)),
		delete: mustUseCase(usecase.NewLimitDeleteUseCase(repo, usecase.NewDataOutput)),
	}
}

type CreateLimitRequest struct {
	Limit     string `json:"limit" binding:"required" example:"1500.00"`
	Amount    string `json:"amount" binding:"required" example:"0.00"`
	LimitDate string `json:"limit_date" binding:"required" example:"2024-05-01"`
	Category  string `json:"category" binding:"required,uuid"`
}

func (r *CreateLimitRequest) toData() (usecase.LimitCreateData, error) {
	limit, err := parseAmount("limit", r.Limit)
	if err != nil {
		return usecase.LimitCreateData{}, err
	}
	amount, err := parseAmount("amount", r.Amount)
	if err != nil {
		return usecase.LimitCreateData{}, err
	}
	limitDate, err := parseDate("limit_date", r.LimitDate)
	if err != nil {
		return usecase.LimitCreateData{}, err
	}
	return usecase.LimitCreateData{
		Limit:      limit,
		Amount:     amount,
		LimitDate:  limitDate,
		CategoryID: uuid.MustParse(r.Category),
	}, nil
}

type UpdateLimitRequest struct {
	Limit  *string `json:"limit"`
	Amount *string `json:"amount"`
}

func (r *UpdateLimitRequest) toData() (usecase.LimitUpdateData, error) {
	limit, err := parseOptionalAmount("limit", r.Limit)
	if err != nil {
		return usecase.LimitUpdateData{}, err
	}
	amount, err := parseOptionalAmount("amount", r.Amount)
	if err != nil {
		return usecase.LimitUpdateData{}, err
	}
	return usecase.LimitUpdateData{Limit: limit, Amount: amount}, nil
}

// Create 创建消费限额
// @Summary 创建消费限额
// @Description 为指定用户按月份与支出类别创建消费限额
// @Tags 限额
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param request body CreateLimitRequest true "限额信息"
// @Success 200 {object} map[string]interface{} "创建成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 404 {object} map[string]interface{} "类别不存在"
// @Router /api/v1/limit/create/{user_id}/ [post]
func (h *LimitHandler) Create(c *gin.Context) {
	CreateDispatcher[CreateLimitRequest]{
		Execute: func(userID int64, req CreateLimitRequest) (usecase.Output, error) {
			data, err := req.toData()
			if err != nil {
				return nil, err
			}
			return h.create.Execute(userID, data)
		},
	}.Handle(c)
}

// List 获取消费限额列表
// @Summary 获取消费限额列表
// @Description 获取指定用户的全部消费限额
// @Tags 限额
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {array} map[string]interface{} "获取成功"
// @Router /api/v1/limit/list/{user_id}/ [get]
func (h *LimitHandler) List(c *gin.Context) {
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

// Update 更新消费限额
// @Summary 更新消费限额
// @Description 调整限额上限或已消费金额
// @Tags 限额
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path string true "记录ID"
// @Param request body UpdateLimitRequest true "更新字段"
// @Success 200 {object} map[string]interface{} "更新成功"
// @Failure 404 {object} map[string]interface{} "记录不存在"
// @Router /api/v1/limit/update/{user_id}/{id}/ [put]
func (h *LimitHandler) Update(c *gin.Context) {
	UpdateDispatcher[UpdateLimitRequest]{
		Execute: func(userID int64, id uuid.UUID, req UpdateLimitRequest) (usecase.Output, error) {
			data, err := req.toData()
			if err != nil {
				return nil, err
			}
			return h.update.Execute(userID, id, data)
		},
	}.Handle(c)
}

// Delete 删除消费限额
// @Summary 删除消费限额
// @Description 删除指定用户的消费限额
// @Tags 限额
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path string true "记录ID"
// @Success 200 {object} map[string]interface{} "删除成功"
// @Failure 404 {object} map[string]interface{} "记录不存在"
// @Router /api/v1/limit/delete/{user_id}/{id}/ [delete]
func (h *LimitHandler) Delete(c *gin.Context) {
	DeleteDispatcher{
		Execute: h.delete.Execute,
	}.Handle(c)
}
