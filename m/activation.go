package m

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activator is an element-wise activation function together with its
// derivative expressed in terms of the activation's output.
type Activator interface {
	Activate(i, j int, sum float64) float64
	Deactivate(m mat.Matrix) mat.Matrix
	fmt.Stringer
}

type Sigmoid struct{}

func (s Sigmoid) Activate(i, j int, sum float64) float64 {
	return 1.0 / (1.0 + math.Exp(-sum))
}

// Deactivate returns A ⊙ (1 - A) for an activation matrix A of any shape.
func (s Sigmoid) Deactivate(matrix mat.Matrix) mat.Matrix {
	return multiply(matrix, addScalar(1, scale(-1, matrix)))
}

func (s Sigmoid) String() string {
	return "sigmoid"
}
