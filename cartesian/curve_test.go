package cartesian

import "testing"

func TestLinearInterpolate(t *testing.T) {

	type subTest struct {
		name      string
		p1        Point
		p2        Point
		x         float64
		expectedY float64
	}

	subTests := []subTest{
		{"positive gradient, positive value", Point{0, 0}, Point{1, 1}, 0.5, 0.5},
		{"positive gradient, negative value", Point{0, 0}, Point{-1, -1}, -0.5, -0.5},
		{"negative gradient, positive value", Point{6, 6}, Point{12, 0}, 9, 3},
		{"negative gradient, negative value", Point{3, 6}, Point{-3, -6}, -1.5, -3},
		{"negative gradient, zero value", Point{6, 6}, Point{-6, -6}, 0, 0},
	}
	for _, subTest := range subTests {
		t.Run(subTest.name, func(t *testing.T) {
			y := linearInterpolation(subTest.p1, subTest.p2, subTest.x)
			if y != subTest.expectedY {
				t.Errorf("Got %f, expected %f", y, subTest.expectedY)
			}
		})
	}
}

func TestCurveAt(t *testing.T) {

	curve := Curve{
		Points: []Point{
			{-10, 1.5},
			{0, 2.5},
			{10, 3.5},
			{20, 4.0},
		},
	}

	type subTest struct {
		name      string
		x         float64
		expectedY float64
	}

	subTests := []subTest{
		{"at a defining point", 0, 2.5},
		{"between points", 5, 3.0},
		{"between points, negative x", -5, 2.0},
		{"clamped below", -40, 1.5},
		{"clamped above", 35, 4.0},
	}
	for _, subTest := range subTests {
		t.Run(subTest.name, func(t *testing.T) {
			y := curve.At(subTest.x)
			if y != subTest.expectedY {
				t.Errorf("Got %f, expected %f", y, subTest.expectedY)
			}
		})
	}
}

func TestCurveAtEmpty(t *testing.T) {
	var curve Curve
	if y := curve.At(1.0); y != 0 {
		t.Errorf("Got %f, expected 0", y)
	}
}
