package geom

// Point 二维点（视口本地坐标）
type Point struct {
	X float64
	Y float64
}
