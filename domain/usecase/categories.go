package usecase

// IncomingCategoryListUseCase 收入类别列表用例
type IncomingCategoryListUseCase struct {
	dataAccess IncomingCategoryListDataAccess
	newOutput  OutputFactory
}

// NewIncomingCategoryListUseCase 装配用例
func NewIncomingCategoryListUseCase(dataAccess IncomingCategoryListDataAccess, newOutput OutputFactory) (*IncomingCategoryListUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &IncomingCategoryListUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 列出全部收入类别；零行退化为空数组
func (uc *IncomingCategoryListUseCase) Execute() (Output, error) {
	out := uc.newOutput()
	result := make([]map[string]any, 0)
	out.SetData(result)

	categories, err := uc.dataAccess.GetIncomingCategories()
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		result = append(result, category.AsMap())
	}
	out.SetData(result)
	return out, nil
}

// RevenueCategoryListUseCase 支出类别列表用例
type RevenueCategoryListUseCase struct {
	dataAccess RevenueCategoryListDataAccess
	newOutput  OutputFactory
}

// NewRevenueCategoryListUseCase 装配用例
func NewRevenueCategoryListUseCase(dataAccess RevenueCategoryListDataAccess, newOutput OutputFactory) (*RevenueCategoryListUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &RevenueCategoryListUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 列出全部支出类别；零行退化为空数组
func (uc *RevenueCategoryListUseCase) Execute() (Output, error) {
	out := uc.newOutput()
	result := make([]map[string]any, 0)
	out.SetData(result)

	categories, err := uc.dataAccess.GetRevenueCategories()
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		result = append(result, category.AsMap())
	}
	out.SetData(result)
	return out, nil
}
