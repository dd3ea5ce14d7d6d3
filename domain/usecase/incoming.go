package usecase

import (
	"github.com/google/uuid"
)

// IncomingCreateUseCase 创建收入记录用例
type IncomingCreateUseCase struct {
	dataAccess IncomingCreateDataAccess
	newOutput  OutputFactory
}

// NewIncomingCreateUseCase 装配用例，端口缺失视为部署缺陷
func NewIncomingCreateUseCase(dataAccess IncomingCreateDataAccess, newOutput OutputFactory) (*IncomingCreateUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &IncomingCreateUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 创建收入记录；引用的类别不存在时返回业务 404
func (uc *IncomingCreateUseCase) Execute(userID int64, data IncomingCreateData) (Output, error) {
	incoming, err := uc.dataAccess.CreateIncoming(userID, data)
	if err != nil {
		return nil, err
	}
	if incoming == nil {
		return nil, NewNotFoundError("CategoryNotFound", "Category not found.")
	}
	out := uc.newOutput()
	out.SetData(incoming.AsMap())
	return out, nil
}

// IncomingListUseCase 收入记录列表用例
type IncomingListUseCase struct {
	dataAccess IncomingListDataAccess
	newOutput  OutputFactory
}

// NewIncomingListUseCase 装配用例
func NewIncomingListUseCase(dataAccess IncomingListDataAccess, newOutput OutputFactory) (*IncomingListUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &IncomingListUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 列出用户的全部收入记录；零行退化为空数组而不是 null
func (uc *IncomingListUseCase) Execute(userID int64) (Output, error) {
	out := uc.newOutput()
	result := make([]map[string]any, 0)
	out.SetData(result)

	incomings, err := uc.dataAccess.GetIncomings(userID)
	if err != nil {
		return nil, err
	}
	for _, incoming := range incomings {
		result = append(result, incoming.AsMap())
	}
	out.SetData(result)
	return out, nil
}

// IncomingRetrieveUseCase 收入记录详情用例
type IncomingRetrieveUseCase struct {
	dataAccess IncomingRetrieveDataAccess
	newOutput  OutputFactory
}

// NewIncomingRetrieveUseCase 装配用例
func NewIncomingRetrieveUseCase(dataAccess IncomingRetrieveDataAccess, newOutput OutputFactory) (*IncomingRetrieveUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &IncomingRetrieveUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 查询单条收入记录；未找到时输出空载荷，由分发层渲染 404
func (uc *IncomingRetrieveUseCase) Execute(id uuid.UUID, userID int64) (Output, error) {
	out := uc.newOutput()
	incoming, err := uc.dataAccess.GetIncoming(id, userID)
	if err != nil {
		return nil, err
	}
	if incoming == nil {
		return out, nil
	}
	out.SetData(incoming.AsMap())
	return out, nil
}

// IncomingUpdateUseCase 更新收入记录用例
type IncomingUpdateUseCase struct {
	dataAccess IncomingUpdateDataAccess
	newOutput  OutputFactory
}

// NewIncomingUpdateUseCase 装配用例
func NewIncomingUpdateUseCase(dataAccess IncomingUpdateDataAccess, newOutput OutputFactory) (*IncomingUpdateUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &IncomingUpdateUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 部分更新收入记录，未提供的字段保持原值
func (uc *IncomingUpdateUseCase) Execute(userID int64, id uuid.UUID, data IncomingUpdateData) (Output, error) {
	out := uc.newOutput()
	incoming, err := uc.dataAccess.UpdateIncoming(userID, id, data)
	if err != nil {
		return nil, err
	}
	if incoming == nil {
		return out, nil
	}
	out.SetData(incoming.AsMap())
	return out, nil
}

// IncomingDeleteUseCase 删除收入记录用例
type IncomingDeleteUseCase struct {
	dataAccess IncomingDeleteDataAccess
	newOutput  OutputFactory
}

// NewIncomingDeleteUseCase 装配用例
func NewIncomingDeleteUseCase(dataAccess IncomingDeleteDataAccess, newOutput OutputFactory) (*IncomingDeleteUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &IncomingDeleteUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 删除收入记录；重复删除同一 ID 得到同样的未找到响应
func (uc *IncomingDeleteUseCase) Execute(userID int64, id uuid.UUID) (Output, error) {
	out := uc.newOutput()
	deleted, err := uc.dataAccess.DeleteIncoming(userID, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return out, nil
	}
	out.SetData(map[string]any{"message": "Incoming deleted successfully."})
	return out, nil
}
