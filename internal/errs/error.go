package errs

import (
	"errors"
	"fmt"
)

var(
	ErrInvalidColumnName=errors.New("sqlscribe: 非法列名")
	ErrUnsupportedOperand=errors.New("sqlscribe: 不支持的操作数类型")
)

func NewErrInvalidColumnName(name string)error{
	return fmt.Errorf("%w %q",ErrInvalidColumnName,name)
}
func NewErrUnsupportedOperand(arg any)error{
	return fmt.Errorf("%w %T",ErrUnsupportedOperand,arg)
}
