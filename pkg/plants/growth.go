// Package plants 实现程序化生成的植物模型
//
// 每株植物在创建时从注入的随机源抽取一组结构参数（分枝、叶片、花瓣、
// 颜色等），之后的外观完全由当前年龄（学习分钟数）决定：
// 同一株植物在同一年龄重绘，输出完全一致。
package plants

import "math"

// 生长曲线的默认调节常数
// ageScale 控制植物长到"基本成型"所需的分钟数，ageExponent 控制曲线陡度
const (
	ageScale    = 15.0
	ageExponent = 2.0
)

// SmoothenCurve 对 [0, 1] 进度值做缓入缓出整形
//
// f(x) = (sin((x - 0.5)·π) + 1) / 2
//
// 满足 f(0)=0、f(1)=1、f(0.5)=0.5，关于 x=0.5 对称，
// 两端导数为零，让生长的起始和收尾看起来更自然。
func SmoothenCurve(x float64) float64 {
	return (math.Sin((x-0.5)*math.Pi) + 1) / 2
}

// AgeCoefficient 把实际年龄（分钟）映射为归一化生长系数 [0, 1)
//
// f(age) = 1 - 1 / ((age/scale)^exp + 1)
//
// 严格单调递增，f(0) 精确为 0，趋近但永不到达 1，
// 因此植物永远不会缩小，也不会超出完整尺寸。
func AgeCoefficient(age, scale, exponent float64) float64 {
	return 1 - 1/(math.Pow(age/scale, exponent)+1)
}

// InverseAgeCoefficient 是 AgeCoefficient 的精确逆函数
//
// 定义域 [0, 1]；y=1 返回 +Inf（不可达的满生长系数），
// 用于"完全长成"的参照植物。
func InverseAgeCoefficient(y, scale, exponent float64) float64 {
	if y == 1 {
		return math.Inf(1)
	}
	return scale * math.Pow(y/(1-y), 1/exponent)
}
