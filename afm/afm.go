// Package afm describes the platform's analytical query model: the
// attribute-filter-measure specification a caller submits for execution,
// together with the result spec controlling the layout of the returned data.
package afm

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/jinzhu/copier"
)

// Execution is the top level wrapper of an analytical query as sent to the
// execution backend.
type Execution struct {
	Execution ExecutionBody `json:"execution"`
}

// ExecutionBody pairs the query itself with an optional result layout.
type ExecutionBody struct {
	AFM        AFM         `json:"afm"`
	ResultSpec *ResultSpec `json:"resultSpec,omitempty"`
}

// AFM represents the attributes, filters, measures and native totals of an
// analytical query.
type AFM struct {
	Attributes   []Attribute           `json:"attributes,omitempty"`
	Measures     []Measure             `json:"measures,omitempty"`
	Filters      []CompatibilityFilter `json:"filters,omitempty"`
	NativeTotals []NativeTotal         `json:"nativeTotals,omitempty"`
}

// Attribute represents a grouping dimension of an analytical query,
// referencing the display form to present its values with.
type Attribute struct {
	DisplayForm     ObjQualifier `json:"displayForm"`
	LocalIdentifier string       `json:"localIdentifier"`
	Alias           string       `json:"alias,omitempty"`
}

// CreateExecution manages the creation of an execution from a reader
func CreateExecution(reader io.Reader) (*Execution, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.New("failed to read message body")
	}

	var execution Execution
	if err = json.Unmarshal(b, &execution); err != nil {
		return nil, errors.New("failed to parse json body")
	}

	return &execution, nil
}

// Clone returns a deep copy of the execution, safe to mutate independently
// of the original.
func (e *Execution) Clone() (*Execution, error) {
	var clone Execution
	if err := copier.CopyWithOption(&clone, e, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &clone, nil
}
