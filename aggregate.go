package sqlscribe

//聚合函数就是一个函数名套一个列名，AVG("age"),SUM("age"),COUNT("age"),MAX("age"),MIN("age")
//走NewColumn统一校验，里面的列名不合法一样报错

func Avg(col string)(Column,error){
	return aggregate("AVG",col)
}
func Sum(col string)(Column,error){
	return aggregate("SUM",col)
}
func Count(col string)(Column,error){
	return aggregate("COUNT",col)
}
func Max(col string)(Column,error){
	return aggregate("MAX",col)
}
func Min(col string)(Column,error){
	return aggregate("MIN",col)
}

func aggregate(fn string,col string)(Column,error){
	return NewColumn(fn+"("+col+")")
}
