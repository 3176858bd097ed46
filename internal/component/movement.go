// component/movement.go
package component

// Position хранит позицию в мировых координатах
type Position struct {
	X, Y float64
}

// Velocity хранит скорость в мировых единицах в секунду
type Velocity struct {
	X, Y float64
}
