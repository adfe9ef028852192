package m

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Line is one labelled sample.
type Line struct {
	Inputs []float64
	Label  float64
}

type Lines []Line

// GetLines reads comma separated samples: inputNum features followed by a
// binary label. Blank lines are skipped.
func GetLines(reader io.Reader, inputNum int) (Lines, error) {
	scanner := bufio.NewScanner(reader)
	var lines Lines
	var lineNum int
	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		splits := strings.Split(text, ",")
		if len(splits) != inputNum+1 {
			return lines, errInvalidLine{
				lineNum:  lineNum,
				splits:   len(splits),
				expected: inputNum + 1,
			}
		}

		inputs := make([]float64, inputNum)
		for i, split := range splits[:inputNum] {
			num, err := strconv.ParseFloat(strings.TrimSpace(split), 64)
			if err != nil {
				return lines, errors.Wrapf(err, "parsing input at line %d", lineNum)
			}
			inputs[i] = num
		}
		label, err := strconv.ParseFloat(strings.TrimSpace(splits[inputNum]), 64)
		if err != nil {
			return lines, errors.Wrapf(err, "parsing label at line %d", lineNum)
		}
		if label != 0 && label != 1 {
			return lines, errors.Errorf("label at line %d must be 0 or 1, got %v", lineNum, label)
		}

		lines = append(lines, Line{Inputs: inputs, Label: label})
	}
	if err := scanner.Err(); err != nil {
		return lines, errors.Wrap(err, "reading samples")
	}
	return lines, nil
}

type errInvalidLine struct {
	lineNum  int
	splits   int
	expected int
}

func (e errInvalidLine) Error() string {
	return fmt.Sprintf("at line %d, expected %d values, got %d",
		e.lineNum, e.expected, e.splits)
}

// Matrices lays the samples out one per column: X is nx x m, Y is 1 x m.
func (lines Lines) Matrices() (*mat.Dense, *mat.Dense) {
	if len(lines) == 0 {
		return nil, nil
	}
	nx, m := len(lines[0].Inputs), len(lines)
	X := mat.NewDense(nx, m, nil)
	Y := mat.NewDense(1, m, nil)
	for j, line := range lines {
		X.SetCol(j, line.Inputs)
		Y.Set(0, j, line.Label)
	}
	return X, Y
}

func NormalizeLines(lines Lines, std []float64, mean []float64) Lines {
	normalizedLines := make(Lines, len(lines))
	for i, line := range lines {
		normalizedInputs := make([]float64, len(line.Inputs))
		for j, x := range line.Inputs {
			if std[j] == 0 {
				normalizedInputs[j] = x - mean[j]
				continue
			}
			normalizedInputs[j] = (x - mean[j]) / std[j]
		}

		normalizedLines[i] = Line{
			Inputs: normalizedInputs,
			Label:  line.Label,
		}
	}
	return normalizedLines
}

func CalculateMean(lines Lines) []float64 {
	if len(lines) == 0 {
		return nil
	}

	mean := make([]float64, len(lines[0].Inputs))
	for _, line := range lines {
		floats.Add(mean, line.Inputs)
	}
	floats.Scale(1/float64(len(lines)), mean)
	return mean
}

// CalculateStdDev returns the population standard deviation of every feature.
func CalculateStdDev(lines Lines) []float64 {
	if len(lines) == 0 {
		return nil
	}

	mean := CalculateMean(lines)
	stdDev := make([]float64, len(mean))
	for _, line := range lines {
		for i, x := range line.Inputs {
			diff := x - mean[i]
			stdDev[i] += diff * diff
		}
	}

	for i := range stdDev {
		stdDev[i] = math.Sqrt(stdDev[i] / float64(len(lines)))
	}
	return stdDev
}
