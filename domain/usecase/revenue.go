package usecase

import (
	"github.com/google/uuid"
)

// RevenueCreateUseCase 创建支出记录用例
type RevenueCreateUseCase struct {
	dataAccess RevenueCreateDataAccess
	newOutput  OutputFactory
}

// NewRevenueCreateUseCase 装配用例
func NewRevenueCreateUseCase(dataAccess RevenueCreateDataAccess, newOutput OutputFactory) (*RevenueCreateUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &RevenueCreateUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 创建支出记录。未支付的记录在进入数据访问层之前清空支付日期。
func (uc *RevenueCreateUseCase) Execute(userID int64, data RevenueCreateData) (Output, error) {
	if !data.Paid {
		data.PaymentDate = nil
	}
	revenue, err := uc.dataAccess.CreateRevenue(userID, data)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		return nil, NewNotFoundError("CategoryNotFound", "Category not found.")
	}
	out := uc.newOutput()
	out.SetData(revenue.AsMap())
	return out, nil
}

// RevenueListUseCase 支出记录列表用例
type RevenueListUseCase struct {
	dataAccess RevenueListDataAccess
	newOutput  OutputFactory
}

// NewRevenueListUseCase 装配用例
func NewRevenueListUseCase(dataAccess RevenueListDataAccess, newOutput OutputFactory) (*RevenueListUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &RevenueListUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 列出用户的全部支出记录；零行退化为空数组
func (uc *RevenueListUseCase) Execute(userID int64) (Output, error) {
	out := uc.newOutput()
	result := make([]map[string]any, 0)
	out.SetData(result)

	revenues, err := uc.dataAccess.GetRevenues(userID)
	if err != nil {
		return nil, err
	}
	for _, revenue := range revenues {
		result = append(result, revenue.AsMap())
	}
	out.SetData(result)
	return out, nil
}

// RevenueRetrieveUseCase 支出记录详情用例
type RevenueRetrieveUseCase struct {
	dataAccess RevenueRetrieveDataAccess
	newOutput  OutputFactory
}

// NewRevenueRetrieveUseCase 装配用例
func NewRevenueRetrieveUseCase(dataAccess RevenueRetrieveDataAccess, newOutput OutputFactory) (*RevenueRetrieveUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &RevenueRetrieveUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 查询单条支出记录
func (uc *RevenueRetrieveUseCase) Execute(id uuid.UUID, userID int64) (Output, error) {
	out := uc.newOutput()
	revenue, err := uc.dataAccess.GetRevenue(id, userID)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		return out, nil
	}
	out.SetData(revenue.AsMap())
	return out, nil
}

// RevenueUpdateUseCase 更新支出记录用例
type RevenueUpdateUseCase struct {
	dataAccess RevenueUpdateDataAccess
	newOutput  OutputFactory
}

// NewRevenueUpdateUseCase 装配用例
func NewRevenueUpdateUseCase(dataAccess RevenueUpdateDataAccess, newOutput OutputFactory) (*RevenueUpdateUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &RevenueUpdateUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 部分更新支出记录。显式改为未支付时同时丢弃支付日期，
// 无论调用方是否另外传入了 payment_date。
func (uc *RevenueUpdateUseCase) Execute(userID int64, id uuid.UUID, data RevenueUpdateData) (Output, error) {
	if data.Paid != nil && !*data.Paid {
		data.PaymentDate = nil
	}
	out := uc.newOutput()
	revenue, err := uc.dataAccess.UpdateRevenue(userID, id, data)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		return out, nil
	}
	out.SetData(revenue.AsMap())
	return out, nil
}

// RevenueDeleteUseCase 删除支出记录用例
type RevenueDeleteUseCase struct {
	dataAccess RevenueDeleteDataAccess
	newOutput  OutputFactory
}

// NewRevenueDeleteUseCase 装配用例
func NewRevenueDeleteUseCase(dataAccess RevenueDeleteDataAccess, newOutput OutputFactory) (*RevenueDeleteUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &RevenueDeleteUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 删除支出记录
func (uc *RevenueDeleteUseCase) Execute(userID int64, id uuid.UUID) (Output, error) {
	out := uc.newOutput()
	deleted, err := uc.dataAccess.DeleteRevenue(userID, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return out, nil
	}
	out.SetData(map[string]any{"message": "Revenue deleted successfully."})
	return out, nil
}
