package sqlscribe

import "sqlscribe/internal/errs"

//internal包调用方引用不到，这里重新导出给errors.Is用
var (
	ErrInvalidColumnName=errs.ErrInvalidColumnName
	ErrUnsupportedOperand=errs.ErrUnsupportedOperand
)
