package threatmap

import (
	"errors"

	"github.com/aaholmes/multiagent-defense/geometry"
)

// ErrIndexOutOfBounds indicates a GridNode outside the field's
// configured Width/Height, mirroring matrix.Dense's bounds contract.
var ErrIndexOutOfBounds = errors.New("threatmap: index out of bounds")

// Field is a row-major scalar cost grid: w*h float64 cells in a flat
// backing slice (spec §4.1), the same storage layout matrix.Dense uses
// for its dense linear-algebra cells.
type Field struct {
	config geometry.GridConfig
	data   []float64
}

// newField allocates a Field over config, every cell initialized to
// config.BaseCost.
func newField(config geometry.GridConfig) *Field {
	data := make([]float64, config.Width*config.Height)
	for i := range data {
		data[i] = config.BaseCost
	}
	return &Field{config: config, data: data}
}

// index computes the flat offset for node, or ErrIndexOutOfBounds if it
// lies outside the field.
func (f *Field) index(node geometry.GridNode) (int, error) {
	if node.Row < 0 || node.Row >= f.config.Height || node.Col < 0 || node.Col >= f.config.Width {
		return 0, ErrIndexOutOfBounds
	}
	return node.Row*f.config.Width + node.Col, nil
}

// At returns the cost at node.
func (f *Field) At(node geometry.GridNode) (float64, error) {
	idx, err := f.index(node)
	if err != nil {
		return 0, err
	}
	return f.data[idx], nil
}

// Set assigns the cost at node.
func (f *Field) Set(node geometry.GridNode, cost float64) error {
	idx, err := f.index(node)
	if err != nil {
		return err
	}
	f.data[idx] = cost
	return nil
}

// Config returns the GridConfig this field was built over.
func (f *Field) Config() geometry.GridConfig {
	return f.config
}

// addPenalty adds config.ThreatPenalty to the cell at node. Out-of-bounds
// nodes are silently ignored: RasterizeDisk never yields one, but a
// defender-authored hit callback should not be able to panic the builder.
func (f *Field) addPenalty(node geometry.GridNode, penalty float64) {
	idx, err := f.index(node)
	if err != nil {
		return
	}
	f.data[idx] += penalty
}
