package sqlscribe

import (
	"strconv"

	"sqlscribe/internal/errs"
)

//Column 持有一个校验过的标识符
//name不导出且没有setter，所以不合法的Column根本构造不出来
type Column struct {
	name string
}

//NewColumn 校验失败返回ErrInvalidColumnName，不会产生半成品
func NewColumn(name string)(Column,error){
	if !isValidIdentifier(name){
		return Column{},errs.NewErrInvalidColumnName(name)
	}
	return Column{name: name},nil
}

func(c Column)Name()string{
	return c.name
}
func(c Column)String()string{
	return c.name
}

//Eq c.Eq(12) 或者 c.Eq(other) 或者 c.Eq("Tom")
func(c Column)Eq(arg any)(Expression,error){
	return c.expressionOf(opEq,arg)
}
func(c Column)Lt(arg any)(Expression,error){
	return c.expressionOf(opLT,arg)
}
func(c Column)Gt(arg any)(Expression,error){
	return c.expressionOf(opGT,arg)
}
func(c Column)LtEq(arg any)(Expression,error){
	return c.expressionOf(opLTEq,arg)
}
func(c Column)GtEq(arg any)(Expression,error){
	return c.expressionOf(opGTEq,arg)
}

//expressionOf 按操作数类型决定右边的字面量格式
//列引用裸写，字符串包单引号(不做转义，防注入不归这里管)，整数十进制裸写
//只认int，float等其他数值类型一律算不支持
func(c Column)expressionOf(op op,arg any)(Expression,error){
	switch val:=arg.(type) {
	case Column:
		return Expression{left: c.name,op: op,right: val.name},nil
	case string:
		return Expression{left: c.name,op: op,right: "'"+val+"'"},nil
	case int:
		return Expression{left: c.name,op: op,right: strconv.Itoa(val)},nil
	default:
		return Expression{},errs.NewErrUnsupportedOperand(arg)
	}
}
