package policies

import (
	"math"
	"time"

	"github.com/zeu5/tabular-agent/core"
	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Softmax samples the next action with probability proportional to the
// exponential of its stored value, scaled by a temperature. Higher
// temperatures flatten the distribution towards uniform.
type Softmax struct {
	Temperature float64

	rand erand.Source
}

var _ Policy = &Softmax{}

func NewSoftmax(temperature float64) *Softmax {
	return NewSoftmaxSeeded(temperature, uint64(time.Now().UnixNano()))
}

func NewSoftmaxSeeded(temperature float64, seed uint64) *Softmax {
	return &Softmax{
		Temperature: temperature,
		rand:        erand.NewSource(seed),
	}
}

func (s *Softmax) PickAction(table *ValueTable, state string, actions []core.Action) core.Action {
	if len(actions) == 0 {
		return ""
	}

	temp := s.Temperature
	if temp <= 0 {
		temp = 1
	}

	vals := make([]float64, len(actions))
	largest := math.Inf(-1)
	for i, a := range actions {
		vals[i] = table.Get(state, a) / temp
		if vals[i] > largest {
			largest = vals[i]
		}
	}

	// Normalizing before exponentiating
	sum := float64(0)
	for i := range vals {
		vals[i] = math.Exp(vals[i] - largest)
		sum += vals[i]
	}

	weights := make([]float64, len(vals))
	for i, v := range vals {
		weights[i] = v / sum
	}

	i, ok := sampleuv.NewWeighted(weights, s.rand).Take()
	if !ok {
		return actions[0]
	}
	return actions[i]
}
