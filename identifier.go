package sqlscribe

import (
	"regexp"
	"strings"
)

//普通标识符，支持 schema.table.column 这种点号限定
const identifierPattern = `[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*`

//聚合函数是封闭集合，正则由这里拼出来，改这里即可
var aggregateFns=[]string{"AVG","COUNT","MAX","MIN","SUM"}

var(
	identifierRegexp=regexp.MustCompile(`^`+identifierPattern+`$`)
	aggregateRegexp=regexp.MustCompile(`^(?:`+strings.Join(aggregateFns,"|")+`)\(`+identifierPattern+`\)$`)
)

//isValidIdentifier 两种文法任一匹配即合法，无状态无副作用
func isValidIdentifier(name string)bool{
	return identifierRegexp.MatchString(name)||aggregateRegexp.MatchString(name)
}
