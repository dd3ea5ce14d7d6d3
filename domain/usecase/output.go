// Package usecase 实现各实体每个操作对应的用例：
// 依赖注入的数据访问端口执行操作，把拍平后的结果写入输出端口。
package usecase

// Output 用例输出端口：持有可写入的数据载荷，把用例与传输层解耦。
// Data 为 nil 表示"未找到"哨兵，由分发层翻译成 404。
type Output interface {
	SetData(data any)
	Data() any
}

// OutputFactory 每次执行生成一个全新的输出实例
type OutputFactory func() Output

// DataOutput Output 的默认实现
type DataOutput struct {
	data any
}

// NewDataOutput 创建空的输出实例
func NewDataOutput() Output {
	return &DataOutput{}
}

// SetData 写入数据载荷
func (o *DataOutput) SetData(data any) {
	o.data = data
}

// Data 读取数据载荷
func (o *DataOutput) Data() any {
	return o.data
}
