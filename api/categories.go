package api

import (
	"github.com/gin-gonic/gin"

	"gammabudget/database"
	"gammabudget/domain/usecase"
	"gammabudget/repository"
)

// CategoryHandler 类别处理器，类别由系统内置，只提供查询
type CategoryHandler struct {
	incomingList *usecase.IncomingCategoryListUseCase
	revenueList  *usecase.RevenueCategoryListUseCase
}

// NewCategoryHandler 装配类别处理器
func NewCategoryHandler() *CategoryHandler {
	repo := repository.NewCategoryRepository(database.DB)
	return &CategoryHandler{
		incomingList: mustUseCase(usecase.NewIncomingCategoryListUseCase(repo, usecase.NewDataOutput)),
		revenueList:  mustUseCase(usecase.NewRevenueCategoryListUseCase(repo, usecase.NewDataOutput)),
	}
}

// ListIncomingCategories 获取收入类别列表
// @Summary 获取收入类别列表
// @Description 获取系统内置的全部收入类别
// @Tags 类别
// @Produce json
// @Success 200 {array} map[string]interface{} "获取成功"
// @Router /api/v1/incoming/list-categories/ [get]
func (h *CategoryHandler) ListIncomingCategories(c *gin.Context) {
	GetDispatcher{
		Invoke: func(c *gin.Context) (usecase.Output, error) {
			return h.incomingList.Execute()
		},
	}.Handle(c)
}

// ListRevenueCategories 获取支出类别列表
// @Summary 获取支出类别列表
// @Description 获取系统内置的全部支出类别
// @Tags 类别
// @Produce json
// @Success 200 {array} map[string]interface{} "获取成功"
// @Router /api/v1/revenue/list-categories/ [get]
func (h *CategoryHandler) ListRevenueCategories(c *gin.Context) {
	GetDispatcher{
		Invoke: func(c *gin.Context) (usecase.Output, error) {
			return h.revenueList.Execute()
		},
	}.Handle(c)
}
