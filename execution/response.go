// Package execution describes the two documents a query execution backend
// returns: the response envelope listing the dimension headers, and the
// result body carrying the paginated data grid. The envelope must be read
// first, because the header arity of each dimension determines how the grid
// is indexed.
package execution

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/pbenes/gooddata-typings/typeguard"
)

// ExecutionResponseWrapper represents the document returned when an execution
// is accepted.
type ExecutionResponseWrapper struct {
	ExecutionResponse *ExecutionResponse `json:"executionResponse"`
}

// ExecutionResponse pairs the dimension header descriptors with the link the
// result body can be polled from.
type ExecutionResponse struct {
	Links      ResponseLinks     `json:"links"`
	Dimensions []ResultDimension `json:"dimensions"`
}

// ResponseLinks represents the links relevant to an execution response
type ResponseLinks struct {
	ExecutionResult string `json:"executionResult"`
}

// ResultDimension lists the headers laid out along one axis of the result.
type ResultDimension struct {
	Headers []Header `json:"headers"`
}

// Header holds exactly one dimension header variant.
type Header struct {
	AttributeHeader    *AttributeHeader    `json:"attributeHeader,omitempty"`
	MeasureGroupHeader *MeasureGroupHeader `json:"measureGroupHeader,omitempty"`
}

// AttributeHeader describes an attribute placed in a dimension, including the
// attribute the display form presents.
type AttributeHeader struct {
	URI             string            `json:"uri"`
	Identifier      string            `json:"identifier"`
	LocalIdentifier string            `json:"localIdentifier"`
	Name            string            `json:"name"`
	FormOf          AttributeFormOf   `json:"formOf"`
	TotalItems      []TotalHeaderItem `json:"totalItems,omitempty"`
}

// AttributeFormOf identifies the attribute a display form belongs to.
type AttributeFormOf struct {
	URI        string `json:"uri"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// MeasureGroupHeader describes the measure group placed in a dimension.
type MeasureGroupHeader struct {
	Items      []MeasureHeaderItemWrapper `json:"items"`
	TotalItems []TotalHeaderItem          `json:"totalItems,omitempty"`
}

// MeasureHeaderItemWrapper wraps a single measure header of a measure group.
type MeasureHeaderItemWrapper struct {
	MeasureHeaderItem MeasureHeaderItem `json:"measureHeaderItem"`
}

// MeasureHeaderItem describes one measure of the measure group.
type MeasureHeaderItem struct {
	URI             string `json:"uri,omitempty"`
	Identifier      string `json:"identifier,omitempty"`
	LocalIdentifier string `json:"localIdentifier"`
	Name            string `json:"name"`
	Format          string `json:"format"`
}

// TotalHeaderItem names a grand total present in a dimension.
type TotalHeaderItem struct {
	TotalHeaderItem TotalHeaderItemBody `json:"totalHeaderItem"`
}

// TotalHeaderItemBody carries the name of a grand total.
type TotalHeaderItemBody struct {
	Name string `json:"name"`
}

// IsAttributeHeader returns true when the value is an attribute dimension
// header. Accepts both the typed union and decoded JSON.
func IsAttributeHeader(value interface{}) bool {
	switch h := value.(type) {
	case Header:
		return h.AttributeHeader != nil
	case *Header:
		return h != nil && h.AttributeHeader != nil
	default:
		return typeguard.HasField(value, "attributeHeader")
	}
}

// IsMeasureGroupHeader returns true when the value is a measure group
// dimension header.
func IsMeasureGroupHeader(value interface{}) bool {
	switch h := value.(type) {
	case Header:
		return h.MeasureGroupHeader != nil
	case *Header:
		return h != nil && h.MeasureGroupHeader != nil
	default:
		return typeguard.HasField(value, "measureGroupHeader")
	}
}

// CreateExecutionResponse manages the creation of an execution response from
// a reader. Both the wrapped document and a bare response body are accepted.
func CreateExecutionResponse(reader io.Reader) (*ExecutionResponse, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read message body")
	}

	var wrapper ExecutionResponseWrapper
	if err = json.Unmarshal(b, &wrapper); err != nil {
		return nil, errors.Wrap(err, "failed to parse json body")
	}
	if wrapper.ExecutionResponse != nil {
		return wrapper.ExecutionResponse, nil
	}

	var response ExecutionResponse
	if err = json.Unmarshal(b, &response); err != nil {
		return nil, errors.Wrap(err, "failed to parse json body")
	}
	return &response, nil
}
