package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gammabudget/database"
	"gammabudget/domain/usecase"
	"gammabudget/repository"
)

// RevenueHandler 支出记录处理器
type RevenueHandler struct {
	create   *usecase.RevenueCreateUseCase
	list     *usecase.RevenueListUseCase
	retrieve *usecase.RevenueRetrieveUseCase
	update   *usecase.RevenueUpdateUseCase
	delete   *usecase.RevenueDeleteUseCase
}

// NewRevenueHandler 装配支出记录处理器
func NewRevenueHandler() *RevenueHandler {
	repo := repository.NewRevenueRepository(database.DB)
	return &RevenueHandler{
		create:   mustUseCase(usecase.NewRevenueCreateUseCase(repo, usecase.NewDataOutput)),
		list:     mustUseCase(usecase.NewRevenueListUseCase(repo, usecase.NewDataOutput)),
		retrieve: mustUseCase(usecase.NewRevenueRetrieveUseCase(repo, usecase.NewDataOutput)),
		update:   mustUseCase(usecase.NewRevenueUpdateUseCase(repo, usecase.NewDataOutput)),
		delete:   mustUseCase(usecase.NewRevenueDeleteUseCase(repo, usecase.NewDataOutput)),
	}
}

type CreateRevenueRequest struct {
	Name           string  `json:"name" binding:"required" example:"房租"`
	Description    string  `json:"description" example:"每月房租"`
	Amount         string  `json:"amount" binding:"required" example:"2000.00"`
	ExpirationDate string  `json:"expiration_date" binding:"required" example:"2024-05-10"`
	Paid           bool    `json:"paid"`
	PaymentDate    *string `json:"payment_date"`
	Category       string  `json:"category" binding:"required,uuid"`
}

func (r *CreateRevenueRequest) toData() (usecase.RevenueCreateData, error) {
	amount, err := parseAmount("amount", r.Amount)
	if err != nil {
		return usecase.RevenueCreateData{}, err
	}
	expiration, err := parseDate("expiration_date", r.ExpirationDate)
	if err != nil {
		return usecase.RevenueCreateData{}, err
	}
	paymentDate, err := parseOptionalDate("payment_date", r.PaymentDate)
	if err != nil {
		return usecase.RevenueCreateData{}, err
	}
	return usecase.RevenueCreateData{
		Name:           r.Name,
		Description:    r.Description,
		Amount:         amount,
		ExpirationDate: expiration,
		Paid:           r.Paid,
		PaymentDate:    paymentDate,
		CategoryID:     uuid.MustParse(r.Category),
	}, nil
}

type UpdateRevenueRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Amount         *string `json:"amount"`
	ExpirationDate *string `json:"expiration_date"`
	Paid           *bool   `json:"paid"`
	PaymentDate    *string `json:"payment_date"`
	Category       *string `json:"category" binding:"omitempty,uuid"`
}

func (r *UpdateRevenueRequest) toData() (usecase.RevenueUpdateData, error) {
	amount, err := parseOptionalAmount("amount", r.Amount)
	if err != nil {
		return usecase.RevenueUpdateData{}, err
	}
	expiration, err := parseOptionalDate("expiration_date", r.ExpirationDate)
	if err != nil {
		return usecase.RevenueUpdateData{}, err
	}
	paymentDate, err := parseOptionalDate("payment_date", r.PaymentDate)
	if err != nil {
		return usecase.RevenueUpdateData{}, err
	}
	data := usecase.RevenueUpdateData{
		Name:           r.Name,
		Description:    r.Description,
		Amount:         amount,
		ExpirationDate: expiration,
		Paid:           r.Paid,
		PaymentDate:    paymentDate,
	}
	if r.Category != nil {
		categoryID := uuid.MustParse(*r.Category)
		data.CategoryID = &categoryID
	}
	return data, nil
}

// Create 创建支出记录
// @Summary 创建支出记录
// @Description 为指定用户创建一条支出记录，未支付的记录不保存支付日期
// @Tags 支出
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param request body CreateRevenueRequest true "支出信息"
// @Success 200 {object} map[string]interface{} "创建成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 404 {object} map[string]interface{} "类别不存在"
// @Router /api/v1/revenue/create/{user_id}/ [post]
func (h *RevenueHandler) Create(c *gin.Context) {
	CreateDispatcher[CreateRevenueRequest]{
		Execute: func(userID int64, req CreateRevenueRequest) (usecase.Output, error) {
			data, err := req.toData()
			if err != nil {
				return nil, err
			}
			return h.create.Execute(userID, data)
		},
	}.Handle(c)
}

// List 获取支出记录列表
// @Summary 获取支出记录列表
// @Description 获取指定用户的全部支出记录
// @Tags 支出
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {array} map[string]interface{} "获取成功"
// @Router /api/v1/revenue/list/{user_id}/ [get]
func (h *RevenueHandler) List(c *gin.Context) {
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

// Detail 获取支出记录详情
// @Summary 获取支出记录详情
// @Description 获取指定用户的单条支出记录
// @Tags 支出
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path string true "记录ID"
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 404 {object} map[string]interface{} "记录不存在"
// @Router /api/v1/revenue/detail/{user_id}/{id}/ [get]
func (h *RevenueHandler) Detail(c *gin.Context) {
	GetDispatcher{
		Invoke: func(c *gin.Context) (usecase.Output, error) {
			userID, err := pathUserID(c)
			if err != nil {
				return nil, err
			}
			id, err := pathID(c)
			if err != nil {
				return nil, err
			}
			return h.retrieve.Execute(id, userID)
		},
	}.Handle(c)
}

// Update 更新支出记录
// @Summary 更新支出记录
// @Description 部分更新指定用户的支出记录，改为未支付时同时清空支付日期
// @Tags 支出
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path string true "记录ID"
// @Param request body UpdateRevenueRequest true "更新字段"
// @Success 200 {object} map[string]interface{} "更新成功"
// @Failure 404 {object} map[string]interface{} "记录不存在"
// @Router /api/v1/revenue/update/{user_id}/{id}/ [put]
func (h *RevenueHandler) Update(c *gin.Context) {
	UpdateDispatcher[UpdateRevenueRequest]{
		Execute: func(userID int64, id uuid.UUID, req UpdateRevenueRequest) (usecase.Output, error) {
			data, err := req.toData()
			if err != nil {
				return nil, err
			}
			return h.update.Execute(userID, id, data)
		},
	}.Handle(c)
}

// Delete 删除支出记录
// @Summary 删除支出记录
// @Description 删除指定用户的支出记录
// @Tags 支出
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path string true "记录ID"
// @Success 200 {object} map[string]interface{} "删除成功"
// @Failure 404 {object} map[string]interface{} "记录不存在"
// @Router /api/v1/revenue/delete/{user_id}/{id}/ [delete]
func (h *RevenueHandler) Delete(c *gin.Context) {
	DeleteDispatcher{
		Execute: h.delete.Execute,
	}.Handle(c)
}
