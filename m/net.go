package m

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// costEpsilon keeps log(1 - A) finite when A saturates at 1.
const costEpsilon = 1e-7

// Layer holds the learnable parameters of one layer.
type Layer struct {
	W *mat.Dense // layers[i] x fan-in
	B *mat.Dense // layers[i] x 1
}

func (l Layer) clone() Layer {
	return Layer{W: mat.DenseCopyOf(l.W), B: mat.DenseCopyOf(l.B)}
}

// CostPoint is one recorded sample of the training cost.
type CostPoint struct {
	Iteration int
	Cost      float64
}

// ChartSink renders the recorded training cost once training finishes.
type ChartSink interface {
	Plot(points []CostPoint) error
}

// TrainOptions configures Network.Train.
type TrainOptions struct {
	Iterations int
	Alpha      float64
	Verbose    bool
	Graph      bool
	Step       int

	// Progress receives one "Cost after ..." line per recorded step when
	// Verbose is set. Defaults to os.Stdout.
	Progress io.Writer
	// Chart is required when Graph is set.
	Chart ChartSink
}

// Network is a fully connected binary classifier with sigmoid activations
// on every layer.
type Network struct {
	nx        int
	layers    []int
	params    []Layer
	cache     []*mat.Dense
	activator Activator
}

// NewNetwork allocates a network with nx input features and one layer per
// entry in layers. Weights are drawn from src; a nil src uses a
// time-seeded source.
func NewNetwork(nx int, layers []int, src rand.Source) (*Network, error) {
	if len(layers) == 0 {
		return nil, configurationError("layers must be a list of positive integers")
	}
	if nx < 1 {
		return nil, rangeError("nx must be a positive integer")
	}
	for _, nodes := range layers {
		if nodes < 1 {
			return nil, rangeError("layers must be a list of positive integers")
		}
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	net := &Network{
		nx:        nx,
		layers:    append([]int(nil), layers...),
		params:    make([]Layer, len(layers)),
		activator: Sigmoid{},
	}

	for i, rows := range layers {
		cols := nx
		if i > 0 {
			cols = layers[i-1]
		}
		net.params[i] = Layer{
			W: mat.NewDense(rows, cols, randomNormal(rows*cols, cols, src)),
			B: mat.NewDense(rows, 1, nil),
		}
	}

	return net, nil
}

// L returns the number of layers.
func (net *Network) L() int {
	return len(net.layers)
}

func (net *Network) NX() int {
	return net.nx
}

func (net *Network) Layers() []int {
	return append([]int(nil), net.layers...)
}

// Parameters returns a copy of every layer's weights and bias.
func (net *Network) Parameters() []Layer {
	out := make([]Layer, len(net.params))
	for i, p := range net.params {
		out[i] = p.clone()
	}
	return out
}

// Cache returns the activations of the most recent Forward call, or nil
// before the first one.
func (net *Network) Cache() []*mat.Dense {
	return net.cache
}

// Forward propagates X (nx x m) through every layer and returns the output
// activation together with the activation of every layer boundary.
func (net *Network) Forward(X mat.Matrix) (*mat.Dense, []*mat.Dense) {
	cache := make([]*mat.Dense, len(net.layers)+1)
	cache[0] = mat.DenseCopyOf(X)

	for i, p := range net.params {
		z := addColumn(dot(p.W, cache[i]), p.B)
		cache[i+1] = apply(net.activator.Activate, z)
	}

	net.cache = cache
	return cache[len(cache)-1], cache
}

// Cost is the mean binary cross-entropy of predictions A against labels Y.
func (net *Network) Cost(Y, A mat.Matrix) float64 {
	r, c := Y.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			y, a := Y.At(i, j), A.At(i, j)
			sum += y*math.Log(a) + (1-y)*math.Log(1+costEpsilon-a)
		}
	}
	return -sum / float64(c)
}

// Evaluate returns the thresholded predictions for X and the cost of the
// raw output against Y.
func (net *Network) Evaluate(X, Y mat.Matrix) (*mat.Dense, float64) {
	out, _ := net.Forward(X)
	return threshold(0.5, out), net.Cost(Y, out)
}

// gradients back-propagates the output error through the network using
// the current parameters and returns dW and db per layer.
func (net *Network) gradients(Y mat.Matrix, cache []*mat.Dense) []Layer {
	L := len(net.params)
	_, m := Y.Dims()
	grads := make([]Layer, L)

	var dZ *mat.Dense
	for i := L - 1; i >= 0; i-- {
		if i == L-1 {
			dZ = subtract(cache[i+1], Y)
		} else {
			dZ = multiply(dot(net.params[i+1].W.T(), dZ), net.activator.Deactivate(cache[i+1]))
		}
		grads[i] = Layer{
			W: scale(1/float64(m), dot(dZ, cache[i].T())),
			B: scale(1/float64(m), sumRows(dZ)),
		}
	}
	return grads
}

// GradientDescent applies one back-propagation pass. Every layer's
// gradient is computed from the parameters as they were before the pass.
func (net *Network) GradientDescent(Y mat.Matrix, cache []*mat.Dense, alpha float64) {
	grads := net.gradients(Y, cache)
	snapshot := net.Parameters()

	for i := len(net.params) - 1; i >= 0; i-- {
		net.params[i] = Layer{
			W: subtract(snapshot[i].W, scale(alpha, grads[i].W)),
			B: subtract(snapshot[i].B, scale(alpha, grads[i].B)),
		}
	}
}

func (o TrainOptions) validate() error {
	if o.Iterations <= 0 {
		return rangeError("iterations must be a positive integer")
	}
	if math.IsNaN(o.Alpha) || math.IsInf(o.Alpha, 0) {
		return configurationError("alpha must be a float")
	}
	if o.Alpha <= 0 {
		return rangeError("alpha must be positive")
	}
	if o.Verbose || o.Graph {
		if o.Step <= 0 || o.Step > o.Iterations {
			return rangeError("step must be positive and <= iterations")
		}
	}
	if o.Graph && o.Chart == nil {
		return configurationError("graph requires a chart sink")
	}
	return nil
}

// Train runs opts.Iterations forward and gradient descent passes over X
// and Y, then evaluates the trained network on the same data. Validation
// failures leave the network untouched.
func (net *Network) Train(X, Y mat.Matrix, opts TrainOptions) (*mat.Dense, float64, error) {
	if err := opts.validate(); err != nil {
		return nil, 0, err
	}
	out := opts.Progress
	if out == nil {
		out = os.Stdout
	}
	record := opts.Step > 0 && opts.Step <= opts.Iterations

	var points []CostPoint
	for i := 0; i < opts.Iterations; i++ {
		A, cache := net.Forward(X)
		net.GradientDescent(Y, cache, opts.Alpha)

		if record && i%opts.Step == 0 {
			cost := net.Cost(Y, A)
			points = append(points, CostPoint{Iteration: i, Cost: cost})
			if opts.Verbose {
				fmt.Fprintf(out, "Cost after %d iterations: %v\n", i, cost)
			}
		}
	}

	if opts.Graph {
		if err := opts.Chart.Plot(points); err != nil {
			return nil, 0, errors.Wrap(err, "plotting training cost")
		}
	}

	prediction, cost := net.Evaluate(X, Y)
	return prediction, cost, nil
}
