package usecase

import (
	"github.com/google/uuid"
)

// LimitCreateUseCase 创建消费限额用例
type LimitCreateUseCase struct {
	dataAccess LimitCreateDataAccess
	newOutput  OutputFactory
}

// NewLimitCreateUseCase 装配用例
func NewLimitCreateUseCase(dataAccess LimitCreateDataAccess, newOutput OutputFactory) (*LimitCreateUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &LimitCreateUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 创建消费限额；引用的支出类别不存在时返回业务 404
func (uc *LimitCreateUseCase) Execute(userID int64, data LimitCreateData) (Output, error) {
	limit, err := uc.dataAccess.CreateLimit(userID, data)
	if err != nil {
		return nil, err
	}
	if limit == nil {
		return nil, NewNotFoundError("CategoryNotFound", "Category not found.")
	}
	out := uc.newOutput()
	out.SetData(limit.AsMap())
	return out, nil
}

// LimitListUseCase 消费限额列表用例
type LimitListUseCase struct {
	dataAccess LimitListDataAccess
	newOutput  OutputFactory
}

// NewLimitListUseCase 装配用例
func NewLimitListUseCase(dataAccess LimitListDataAccess, newOutput OutputFactory) (*LimitListUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &LimitListUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 列出用户的全部消费限额；零行退化为空数组
func (uc *LimitListUseCase) Execute(userID int64) (Output, error) {
	out := uc.newOutput()
	result := make([]map[string]any, 0)
	out.SetData(result)

	limits, err := uc.dataAccess.GetLimits(userID)
	if err != nil {
		return nil, err
	}
	for _, limit := range limits {
		result = append(result, limit.AsMap())
	}
	out.SetData(result)
	return out, nil
}

// LimitUpdateUseCase 更新消费限额用例
type LimitUpdateUseCase struct {
	dataAccess LimitUpdateDataAccess
	newOutput  OutputFactory
}

// NewLimitUpdateUseCase 装配用例
func NewLimitUpdateUseCase(dataAccess LimitUpdateDataAccess, newOutput OutputFactory) (*LimitUpdateUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &LimitUpdateUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 调整限额上限或已消费金额，未提供的字段保持原值
func (uc *LimitUpdateUseCase) Execute(userID int64, id uuid.UUID, data LimitUpdateData) (Output, error) {
	out := uc.newOutput()
	limit, err := uc.dataAccess.UpdateLimit(userID, id, data)
	if err != nil {
		return nil, err
	}
	if limit == nil {
		return out, nil
	}
	out.SetData(limit.AsMap())
	return out, nil
}

// LimitDeleteUseCase 删除消费限额用例
type LimitDeleteUseCase struct {
	dataAccess LimitDeleteDataAccess
	newOutput  OutputFactory
}

// NewLimitDeleteUseCase 装配用例
func NewLimitDeleteUseCase(dataAccess LimitDeleteDataAccess, newOutput OutputFactory) (*LimitDeleteUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &LimitDeleteUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 删除消费限额
func (uc *LimitDeleteUseCase) Execute(userID int64, id uuid.UUID) (Output, error) {
	out := uc.newOutput()
	deleted, err := uc.dataAccess.DeleteLimit(userID, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return out, nil
	}
	out.SetData(map[string]any{"message": "Limit deleted successfully."})
	return out, nil
}
