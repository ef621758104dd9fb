package embedding

import (
	"github.com/pbenes/gooddata-typings/afm"
	"github.com/pbenes/gooddata-typings/typeguard"
)

// DateFilterType tags the two interval forms of an embedded date filter.
type DateFilterType string

const (
	AbsoluteDateFilterType DateFilterType = "absolute"
	RelativeDateFilterType DateFilterType = "relative"
)

// FilterContext is the payload of a setFilterContext command.
type FilterContext struct {
	Filters []FilterItem `json:"filters"`
}

// FilterItem holds exactly one embedded filter variant.
type FilterItem struct {
	DateFilter      *DateFilter      `json:"dateFilter,omitempty"`
	AttributeFilter *AttributeFilter `json:"attributeFilter,omitempty"`
}

// DateFilter narrows the embedded product to a date interval. From and To
// hold YYYY-MM-DD strings for the absolute form and granularity offsets for
// the relative form, matching the wire format.
type DateFilter struct {
	Type        DateFilterType    `json:"type"`
	Granularity string            `json:"granularity"`
	From        interface{}       `json:"from,omitempty"`
	To          interface{}       `json:"to,omitempty"`
	DataSet     *afm.ObjQualifier `json:"dataSet,omitempty"`
}

// AttributeFilter narrows the embedded product to attribute elements of a
// display form.
type AttributeFilter struct {
	DisplayForm       string   `json:"displayForm"`
	NegativeSelection bool     `json:"negativeSelection"`
	AttributeElements []string `json:"attributeElements"`
}

// RemoveFilterContext is the payload of a removeFilterContext command.
type RemoveFilterContext struct {
	Filters []RemoveFilterItem `json:"filters"`
}

// RemoveFilterItem holds exactly one removal variant: a date filter removal
// names its dataSet, an attribute filter removal names its displayForm.
type RemoveFilterItem struct {
	DataSet     *afm.ObjQualifier `json:"dataSet,omitempty"`
	DisplayForm *afm.ObjQualifier `json:"displayForm,omitempty"`
}

// ResolvedFilterContext reports the filters a product actually applied after
// resolving a filter context, with intervals and element selections computed
// to concrete values.
type ResolvedFilterContext struct {
	Filters []ResolvedFilterItem `json:"filters"`
}

// ResolvedFilterItem holds exactly one resolved filter variant.
type ResolvedFilterItem struct {
	DateFilter      *ResolvedDateFilter      `json:"dateFilter,omitempty"`
	AttributeFilter *ResolvedAttributeFilter `json:"attributeFilter,omitempty"`
}

// ResolvedDateFilter is the concrete interval a date filter resolved to.
// From and To always hold YYYY-MM-DD strings, whichever form the filter was
// set in.
type ResolvedDateFilter struct {
	Granularity string            `json:"granularity,omitempty"`
	From        string            `json:"from"`
	To          string            `json:"to"`
	DataSet     *afm.ObjQualifier `json:"dataSet,omitempty"`
}

// ResolvedAttributeFilter pairs the element uris an attribute filter resolved
// to with their display values, index-aligned.
type ResolvedAttributeFilter struct {
	DisplayForm       string   `json:"displayForm"`
	NegativeSelection bool     `json:"negativeSelection"`
	URIs              []string `json:"uris"`
	Values            []string `json:"values"`
}

// IsDateFilterItem returns true when the value is an embedded date filter.
// Accepts both the typed union and decoded JSON.
func IsDateFilterItem(value interface{}) bool {
	switch f := value.(type) {
	case FilterItem:
		return f.DateFilter != nil
	case *FilterItem:
		return f != nil && f.DateFilter != nil
	default:
		return typeguard.HasField(value, "dateFilter")
	}
}

// IsAttributeFilterItem returns true when the value is an embedded attribute
// filter.
func IsAttributeFilterItem(value interface{}) bool {
	switch f := value.(type) {
	case FilterItem:
		return f.AttributeFilter != nil
	case *FilterItem:
		return f != nil && f.AttributeFilter != nil
	default:
		return typeguard.HasField(value, "attributeFilter")
	}
}

// IsResolvedDateFilter returns true when the value is a resolved date
// filter. The marker field matches the unresolved form; the typed union is
// what distinguishes them.
func IsResolvedDateFilter(value interface{}) bool {
	switch f := value.(type) {
	case ResolvedFilterItem:
		return f.DateFilter != nil
	case *ResolvedFilterItem:
		return f != nil && f.DateFilter != nil
	default:
		return typeguard.HasField(value, "dateFilter")
	}
}

// IsResolvedAttributeFilter returns true when the value is a resolved
// attribute filter.
func IsResolvedAttributeFilter(value interface{}) bool {
	switch f := value.(type) {
	case ResolvedFilterItem:
		return f.AttributeFilter != nil
	case *ResolvedFilterItem:
		return f != nil && f.AttributeFilter != nil
	default:
		return typeguard.HasField(value, "attributeFilter")
	}
}

// IsRemoveDateFilter returns true when the value removes a date filter.
func IsRemoveDateFilter(value interface{}) bool {
	switch f := value.(type) {
	case RemoveFilterItem:
		return f.DataSet != nil
	case *RemoveFilterItem:
		return f != nil && f.DataSet != nil
	default:
		return typeguard.HasField(value, "dataSet")
	}
}

// IsRemoveAttributeFilter returns true when the value removes an attribute
// filter.
func IsRemoveAttributeFilter(value interface{}) bool {
	switch f := value.(type) {
	case RemoveFilterItem:
		return f.DisplayForm != nil
	case *RemoveFilterItem:
		return f != nil && f.DisplayForm != nil
	default:
		return typeguard.HasField(value, "displayForm")
	}
}
