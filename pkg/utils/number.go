package utils

import "math"

// RoundTo arredonda f para a quantidade de casas decimais informada
func RoundTo(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	pow := math.Pow10(places)
	return math.Round(f*pow) / pow
}
