package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gammabudget/database"
	"gammabudget/domain/usecase"
	"gammabudget/repository"
)

// IncomingHandler 收入记录处理器
type IncomingHandler struct {
	create   *usecase.IncomingCreateUseCase
	list     *usecase.IncomingListUseCase
	retrieve *usecase.IncomingRetrieveUseCase
	update   *usecase.IncomingUpdateUseCase
	delete   *usecase.IncomingDeleteUseCase
}

// NewIncomingHandler 装配收入记录处理器
func NewIncomingHandler() *IncomingHandler {
	repo := repository.NewIncomingRepository(database.DB)
	return &IncomingHandler{
		create:   mustUseCase(usecase.NewIncomingCreateUseCase(repo, usecase.NewDataOutput)),
		list:     mustUseCase(usecase.NewIncomingListUseCase(repo, usecase.NewDataOutput)),
		retrieve: mustUseCase(usecase.NewIncomingRetrieveUseCase(repo, usecase.NewDataOutput)),
		update:   mustUseCase(usecase.NewIncomingUpdateUseCase(repo, usecase.NewDataOutput)),
		delete:   mustUseCase(usecase.NewIncomingDeleteUseCase(repo, usecase.NewDataOutput)),
	}
}

type CreateIncomingRequest struct {
	Name        string `json:"name" binding:"required" example:"工资"`
	Description string `json:"description" example:"五月工资"`
	Amount      string `json:"amount" binding:"required" example:"5000.00"`
	Category    string `json:"category" binding:"required,uuid"`
}

func (r *CreateIncomingRequest) toData() (usecase.IncomingCreateData, error) {
	amount, err := parseAmount("amount", r.Amount)
	if err != nil {
		return usecase.IncomingCreateData{}, err
	}
	return usecase.IncomingCreateData{
		Name:        r.Name,
		Description: r.Description,
		Amount:      amount,
		CategoryID:  uuid.MustParse(r.Category),
	}, nil
}

type UpdateIncomingRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	Category    *string `json:"category" binding:"omitempty,uuid"`
}

func (r *UpdateIncomingRequest) toData() (usecase.IncomingUpdateData, error) {
	amount, err := parseOptionalAmount("amount", r.Amount)
	if err != nil {
		return usecase.IncomingUpdateData{}, err
	}
	data := usecase.IncomingUpdateData{
		Name:        r.Name,
		Description: r.Description,
		Amount:      amount,
	}
	if r.Category != nil {
		categoryID := uuid.MustParse(*r.Category)
		data.CategoryID = &categoryID
	}
	return data, nil
}

// Create 创建收入记录
// @Summary 创建收入记录
// @Description 为指定用户创建一条收入记录
// @Tags 收入
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param request body CreateIncomingRequest true "收入信息"
// @Success 200 {object} map[string]interface{} "创建成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 404 {object} map[string]interface{} "类别不存在"
// @Router /api/v1/incoming/create/{user_id}/ [post]
func (h *IncomingHandler) Create(c *gin.Context) {
	CreateDispatcher[CreateIncomingRequest]{
		Execute: func(userID int64, req CreateIncomingRequest) (usecase.Output, error) {
			data, err := req.toData()
			if err != nil {
				return nil, err
			}
			return h.create.Execute(userID, data)
		},
	}.Handle(c)
}

// List 获取收入记录列表
// @Summary 获取收入记录列表
// @Description 获取指定用户的全部收入记录
// @Tags 收入
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {array} map[string]interface{} "获取成功"
// @Router /api/v1/incoming/list/{user_id}/ [get]
func (h *IncomingHandler) List(c *gin.Context) {
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

// Detail 获取收入记录详情
// @Summary 获取收入记录详情
// @Description 获取指定用户的单条收入记录
// @Tags 收入
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path string true "记录ID"
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 404 {object} map[string]interface{} "记录不存在"
// @Router /api/v1/incoming/detail/{user_id}/{id}/ [get]
func (h *IncomingHandler) Detail(c *gin.Context) {
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

// Update 更新收入记录
// @Summary 更新收入记录
// @Description 部分更新指定用户的收入记录，未提供的字段保持原值
// @Tags 收入
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path string true "记录ID"
// @Param request body UpdateIncomingRequest true "更新字段"
// @Success 200 {object} map[string]interface{} "更新成功"
// @Failure 404 {object} map[string]interface{} "记录不存在"
// @Router /api/v1/incoming/update/{user_id}/{id}/ [put]
func (h *IncomingHandler) Update(c *gin.Context) {
	UpdateDispatcher[UpdateIncomingRequest]{
		Execute: func(userID int64, id uuid.UUID, req UpdateIncomingRequest) (usecase.Output, error) {
			data, err := req.toData()
			if err != nil {
				return nil, err
			}
			return h.update.Execute(userID, id, data)
		},
	}.Handle(c)
}

// Delete 删除收入记录
// @Summary 删除收入记录
// @Description 删除指定用户的收入记录
// @Tags 收入
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path string true "记录ID"
// @Success 200 {object} map[string]interface{} "删除成功"
// @Failure 404 {object} map[string]interface{} "记录不存在"
// @Router /api/v1/incoming/delete/{user_id}/{id}/ [delete]
func (h *IncomingHandler) Delete(c *gin.Context) {
	DeleteDispatcher{
		Execute: h.delete.Execute,
	}.Handle(c)
}
