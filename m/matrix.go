package m

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func dot(m, n mat.Matrix) *mat.Dense {
	r, _ := m.Dims()
	_, c := n.Dims()
	o := mat.NewDense(r, c, nil)
	o.Product(m, n)
	return o
}

func apply(fn func(i, j int, v float64) float64, m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Apply(fn, m)
	return o
}

func scale(s float64, m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Scale(s, m)
	return o
}

func multiply(m, n mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.MulElem(m, n)
	return o
}

func subtract(m, n mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Sub(m, n)
	return o
}

// addScalar returns s + m element-wise.
func addScalar(s float64, m mat.Matrix) *mat.Dense {
	return apply(func(_, _ int, v float64) float64 { return v + s }, m)
}

// addColumn adds the column vector b to every column of m.
func addColumn(m, b mat.Matrix) *mat.Dense {
	return apply(func(i, _ int, v float64) float64 { return v + b.At(i, 0) }, m)
}

// sumRows collapses m into a column vector of its row sums.
func sumRows(m mat.Matrix) *mat.Dense {
	r, _ := m.Dims()
	o := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		o.Set(i, 0, floats.Sum(mat.Row(nil, i, m)))
	}
	return o
}

// threshold maps every value >= t to 1 and the rest to 0.
func threshold(t float64, m mat.Matrix) *mat.Dense {
	return apply(func(_, _ int, v float64) float64 {
		if v >= t {
			return 1
		}
		return 0
	}, m)
}

// randomNormal draws size values from N(0, 1) scaled by sqrt(2/fanIn).
func randomNormal(size, fanIn int, src rand.Source) []float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   src,
	}
	s := math.Sqrt(2 / float64(fanIn))

	data := make([]float64, size)
	for i := range data {
		data[i] = dist.Rand() * s
	}
	return data
}
