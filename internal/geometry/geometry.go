// Package geometry has the area helpers used by the CLI.
package geometry

import "math"

func RectangleArea(width, height float64) float64 {
	return width * height
}

func CircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}
