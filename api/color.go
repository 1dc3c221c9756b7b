package api

import (
	"github.com/yuhongherald/curvesheet/numerics"
	"google.golang.org/api/sheets/v4"
)

// Color values from 0 to 1
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

var (
	White = &Color{R: 1, G: 1, B: 1, A: 1}
	Red   = &Color{R: 1, G: 0.5, B: 0.5, A: 1}
	Green = &Color{R: 0.5, G: 1, B: 0.5, A: 1}
)

func Lerp(color1 *Color, color2 *Color, alpha float64) *Color {
	alpha = numerics.AtOrBetween(alpha, 0, 1)
	oneMinusAlpha := 1 - alpha

	return &Color{
		R: color1.R*oneMinusAlpha + color2.R*alpha,
		G: color1.G*oneMinusAlpha + color2.G*alpha,
		B: color1.B*oneMinusAlpha + color2.B*alpha,
		A: color1.A*oneMinusAlpha + color2.A*alpha,
	}
}

// Ease is Lerp with alpha reshaped by fn over 0~1.
func Ease(color1 *Color, color2 *Color, alpha float64, fn numerics.Function) *Color {
	return Lerp(color1, color2, fn.Over(alpha, numerics.ZeroOne))
}

func (c *Color) toSheetsColor() *sheets.Color {
	return &sheets.Color{
		Red:   c.R,
		Green: c.G,
		Blue:  c.B,
		Alpha: c.A,
	}
}
