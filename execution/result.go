package execution

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/pbenes/gooddata-typings/typeguard"
)

// DataValue is a single cell of the result grid: a number, a string or nil.
// The backend serializes most numeric cells as strings; callers choosing to
// parse them own the conversion.
type DataValue interface{}

// ExecutionResultWrapper represents the document a result page is delivered in.
type ExecutionResultWrapper struct {
	ExecutionResult *ExecutionResult `json:"executionResult"`
}

// ExecutionResult represents one page of the data computed for an execution.
type ExecutionResult struct {
	HeaderItems [][][]ResultHeaderItem `json:"headerItems,omitempty"`
	Data        json.RawMessage        `json:"data"`
	Totals      [][][]DataValue        `json:"totals,omitempty"`
	Paging      Paging                 `json:"paging"`
	Warnings    []Warning              `json:"warnings,omitempty"`
}

// Paging carries the per-dimension cell counts of a result page. The slices
// are indexed by dimension, matching the response envelope.
type Paging struct {
	Count  []int `json:"count"`
	Offset []int `json:"offset"`
	Total  []int `json:"total"`
}

// Warning represents a non-fatal problem the backend hit while computing the
// result, e.g. a sanitized filter.
type Warning struct {
	WarningCode string        `json:"warningCode"`
	Message     string        `json:"message"`
	Parameters  []interface{} `json:"parameters,omitempty"`
}

// ResultHeaderItem holds exactly one result header variant.
type ResultHeaderItem struct {
	AttributeHeaderItem *AttributeHeaderItem     `json:"attributeHeaderItem,omitempty"`
	MeasureHeaderItem   *ResultMeasureHeaderItem `json:"measureHeaderItem,omitempty"`
	TotalHeaderItem     *ResultTotalHeaderItem   `json:"totalHeaderItem,omitempty"`
}

// AttributeHeaderItem names one attribute element of a result row or column.
type AttributeHeaderItem struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// ResultMeasureHeaderItem names one measure of a result row or column.
type ResultMeasureHeaderItem struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// ResultTotalHeaderItem names one total of a result row or column.
type ResultTotalHeaderItem struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Grid returns the data normalized to two dimensions. A one-dimensional
// result (single measure, no attribute on the second dimension) is returned
// as a single row. Missing or empty data yields an empty grid. Rows of
// nothing but null are read as a single row.
func (r *ExecutionResult) Grid() ([][]DataValue, error) {
	if len(r.Data) == 0 {
		return nil, nil
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(r.Data, &rows); err != nil {
		return nil, errors.Wrap(err, "malformed data grid")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	twoDimensional := false
	for _, row := range rows {
		trimmed := bytes.TrimSpace(row)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			continue
		}
		twoDimensional = trimmed[0] == '['
		break
	}

	if !twoDimensional {
		var row []DataValue
		if err := json.Unmarshal(r.Data, &row); err != nil {
			return nil, errors.Wrap(err, "malformed data grid")
		}
		return [][]DataValue{row}, nil
	}

	var grid [][]DataValue
	if err := json.Unmarshal(r.Data, &grid); err != nil {
		return nil, errors.Wrap(err, "malformed data grid")
	}
	return grid, nil
}

// IsAttributeHeaderItem returns true when the value is an attribute result
// header. Accepts both the typed union and decoded JSON.
func IsAttributeHeaderItem(value interface{}) bool {
	switch h := value.(type) {
	case ResultHeaderItem:
		return h.AttributeHeaderItem != nil
	case *ResultHeaderItem:
		return h != nil && h.AttributeHeaderItem != nil
	default:
		return typeguard.HasField(value, "attributeHeaderItem")
	}
}

// IsMeasureHeaderItem returns true when the value is a measure result header.
func IsMeasureHeaderItem(value interface{}) bool {
	switch h := value.(type) {
	case ResultHeaderItem:
		return h.MeasureHeaderItem != nil
	case *ResultHeaderItem:
		return h != nil && h.MeasureHeaderItem != nil
	default:
		return typeguard.HasField(value, "measureHeaderItem")
	}
}

// IsTotalHeaderItem returns true when the value is a total result header.
func IsTotalHeaderItem(value interface{}) bool {
	switch h := value.(type) {
	case ResultHeaderItem:
		return h.TotalHeaderItem != nil
	case *ResultHeaderItem:
		return h != nil && h.TotalHeaderItem != nil
	default:
		return typeguard.HasField(value, "totalHeaderItem")
	}
}

// CreateExecutionResult manages the creation of an execution result from a
// reader. Both the wrapped document and a bare result body are accepted.
func CreateExecutionResult(reader io.Reader) (*ExecutionResult, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read message body")
	}

	var wrapper ExecutionResultWrapper
	if err = json.Unmarshal(b, &wrapper); err != nil {
		return nil, errors.Wrap(err, "failed to parse json body")
	}
	if wrapper.ExecutionResult != nil {
		return wrapper.ExecutionResult, nil
	}

	var result ExecutionResult
	if err = json.Unmarshal(b, &result); err != nil {
		return nil, errors.Wrap(err, "failed to parse json body")
	}
	return &result, nil
}
