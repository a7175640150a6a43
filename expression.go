package sqlscribe

import "strings"

//衍生类型，由string衍生过来
type op string

const (
	opEq op="="
	opLT op="<"
	opGT op=">"
	opLTEq op="<="
	opGTEq op=">="
)
func(o op)String()string {
	return string(o)
}

//Expression 一个构建完成的二元比较，左右都已经格式化成SQL文本
//不可变对象(不使用指针)，构建之后只读，可以跨goroutine共享
type Expression struct {
	left string
	op op
	right string
}

//Build 渲染成 "<left> <op> <right>"，纯函数，重复调用结果相同
func(e Expression)Build()string{
	var sb strings.Builder
	sb.WriteString(e.left)
	sb.WriteByte(' ')
	sb.WriteString(e.op.String())
	sb.WriteByte(' ')
	sb.WriteString(e.right)
	return sb.String()
}

//下面三个暴露原始字段，给日志和调试用，不要当SQL文本拼进语句
func(e Expression)Left()string{
	return e.left
}
func(e Expression)Op()string{
	return e.op.String()
}
func(e Expression)Right()string{
	return e.right
}
