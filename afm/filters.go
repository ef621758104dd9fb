package afm

import "github.com/pbenes/gooddata-typings/typeguard"

// FilterKind identifies which variant a filter union holds.
type FilterKind string

const (
	PositiveAttributeFilterKind FilterKind = "positiveAttributeFilter"
	NegativeAttributeFilterKind FilterKind = "negativeAttributeFilter"
	AbsoluteDateFilterKind      FilterKind = "absoluteDateFilter"
	RelativeDateFilterKind      FilterKind = "relativeDateFilter"
	MeasureValueFilterKind      FilterKind = "measureValueFilter"
	ExpressionFilterKind        FilterKind = "expressionFilter"
)

// ComparisonOperator functions accepted by a comparison condition.
type ComparisonOperator string

const (
	OperatorGreaterThan          ComparisonOperator = "GREATER_THAN"
	OperatorGreaterThanOrEqualTo ComparisonOperator = "GREATER_THAN_OR_EQUAL_TO"
	OperatorLessThan             ComparisonOperator = "LESS_THAN"
	OperatorLessThanOrEqualTo    ComparisonOperator = "LESS_THAN_OR_EQUAL_TO"
	OperatorEqualTo              ComparisonOperator = "EQUAL_TO"
	OperatorNotEqualTo           ComparisonOperator = "NOT_EQUAL_TO"
)

// RangeOperator functions accepted by a range condition.
type RangeOperator string

const (
	OperatorBetween    RangeOperator = "BETWEEN"
	OperatorNotBetween RangeOperator = "NOT_BETWEEN"
)

// FilterItem holds exactly one attribute or date filter variant. This is the
// filter vocabulary accepted inside a simple measure definition.
type FilterItem struct {
	PositiveAttributeFilter *PositiveAttributeFilter `json:"positiveAttributeFilter,omitempty"`
	NegativeAttributeFilter *NegativeAttributeFilter `json:"negativeAttributeFilter,omitempty"`
	AbsoluteDateFilter      *AbsoluteDateFilter      `json:"absoluteDateFilter,omitempty"`
	RelativeDateFilter      *RelativeDateFilter      `json:"relativeDateFilter,omitempty"`
}

// Kind returns the variant this filter holds, or the empty string when no
// variant is set.
func (f FilterItem) Kind() FilterKind {
	switch {
	case f.PositiveAttributeFilter != nil:
		return PositiveAttributeFilterKind
	case f.NegativeAttributeFilter != nil:
		return NegativeAttributeFilterKind
	case f.AbsoluteDateFilter != nil:
		return AbsoluteDateFilterKind
	case f.RelativeDateFilter != nil:
		return RelativeDateFilterKind
	default:
		return ""
	}
}

// CompatibilityFilter widens FilterItem with the filter variants accepted at
// the execution level only: measure value filters and the legacy expression
// filter. An expression filter has no wrapper field; its marker is the bare
// "value" field.
type CompatibilityFilter struct {
	FilterItem
	MeasureValueFilter *MeasureValueFilter `json:"measureValueFilter,omitempty"`
	Value              *string             `json:"value,omitempty"`
}

// Kind returns the variant this filter holds, or the empty string when no
// variant is set.
func (f CompatibilityFilter) Kind() FilterKind {
	if kind := f.FilterItem.Kind(); kind != "" {
		return kind
	}
	switch {
	case f.MeasureValueFilter != nil:
		return MeasureValueFilterKind
	case f.Value != nil:
		return ExpressionFilterKind
	default:
		return ""
	}
}

// PositiveAttributeFilter keeps only the listed elements of an attribute.
type PositiveAttributeFilter struct {
	DisplayForm ObjQualifier `json:"displayForm"`
	In          []string     `json:"in"`
	TextFilter  bool         `json:"textFilter,omitempty"`
}

// NegativeAttributeFilter drops the listed elements of an attribute. An empty
// notIn list means the filter is a noop.
type NegativeAttributeFilter struct {
	DisplayForm ObjQualifier `json:"displayForm"`
	NotIn       []string     `json:"notIn"`
	TextFilter  bool         `json:"textFilter,omitempty"`
}

// AbsoluteDateFilter keeps rows within a fixed date interval. Dates use the
// platform's YYYY-MM-DD form.
type AbsoluteDateFilter struct {
	DataSet ObjQualifier `json:"dataSet"`
	From    string       `json:"from"`
	To      string       `json:"to"`
}

// RelativeDateFilter keeps rows within an interval expressed in granularity
// units relative to today, e.g. from -6 to 0 at month granularity.
type RelativeDateFilter struct {
	DataSet     ObjQualifier `json:"dataSet"`
	Granularity string       `json:"granularity"`
	From        int          `json:"from"`
	To          int          `json:"to"`
}

// ExpressionFilter carries a raw MAQL filter expression. Deprecated on the
// platform but still accepted on the wire.
type ExpressionFilter struct {
	Value string `json:"value"`
}

// MeasureValueFilter keeps rows where the referenced measure's value satisfies
// the condition. A filter without a condition is a noop.
type MeasureValueFilter struct {
	Measure   Qualifier  `json:"measure"`
	Condition *Condition `json:"condition,omitempty"`
}

// Condition holds exactly one measure value filter condition variant.
type Condition struct {
	Comparison *ComparisonCondition `json:"comparison,omitempty"`
	Range      *RangeCondition      `json:"range,omitempty"`
}

// ComparisonCondition compares the measure value against a single bound.
type ComparisonCondition struct {
	Operator ComparisonOperator `json:"operator"`
	Value    float64            `json:"value"`
}

// RangeCondition checks the measure value against a closed interval.
type RangeCondition struct {
	Operator RangeOperator `json:"operator"`
	From     float64       `json:"from"`
	To       float64       `json:"to"`
}

// IsPositiveAttributeFilter returns true when the value is a positive
// attribute filter. Accepts both the typed unions and decoded JSON.
func IsPositiveAttributeFilter(value interface{}) bool {
	if f, ok := asFilter(value); ok {
		return f.PositiveAttributeFilter != nil
	}
	return typeguard.HasField(value, "positiveAttributeFilter")
}

// IsNegativeAttributeFilter returns true when the value is a negative
// attribute filter.
func IsNegativeAttributeFilter(value interface{}) bool {
	if f, ok := asFilter(value); ok {
		return f.NegativeAttributeFilter != nil
	}
	return typeguard.HasField(value, "negativeAttributeFilter")
}

// IsAttributeFilter returns true when the value is a positive or negative
// attribute filter.
func IsAttributeFilter(value interface{}) bool {
	return IsPositiveAttributeFilter(value) || IsNegativeAttributeFilter(value)
}

// IsAbsoluteDateFilter returns true when the value is an absolute date filter.
func IsAbsoluteDateFilter(value interface{}) bool {
	if f, ok := asFilter(value); ok {
		return f.AbsoluteDateFilter != nil
	}
	return typeguard.HasField(value, "absoluteDateFilter")
}

// IsRelativeDateFilter returns true when the value is a relative date filter.
func IsRelativeDateFilter(value interface{}) bool {
	if f, ok := asFilter(value); ok {
		return f.RelativeDateFilter != nil
	}
	return typeguard.HasField(value, "relativeDateFilter")
}

// IsDateFilter returns true when the value is an absolute or relative date
// filter.
func IsDateFilter(value interface{}) bool {
	return IsAbsoluteDateFilter(value) || IsRelativeDateFilter(value)
}

// IsMeasureValueFilter returns true when the value is a measure value filter.
func IsMeasureValueFilter(value interface{}) bool {
	switch f := value.(type) {
	case CompatibilityFilter:
		return f.MeasureValueFilter != nil
	case *CompatibilityFilter:
		return f != nil && f.MeasureValueFilter != nil
	default:
		return typeguard.HasField(value, "measureValueFilter")
	}
}

// IsExpressionFilter returns true when the value is a raw expression filter.
func IsExpressionFilter(value interface{}) bool {
	switch f := value.(type) {
	case ExpressionFilter:
		return true
	case *ExpressionFilter:
		return f != nil
	case CompatibilityFilter:
		return f.Value != nil
	case *CompatibilityFilter:
		return f != nil && f.Value != nil
	default:
		return typeguard.HasField(value, "value")
	}
}

// IsComparisonCondition returns true when the value is a single-bound measure
// value filter condition.
func IsComparisonCondition(value interface{}) bool {
	switch c := value.(type) {
	case Condition:
		return c.Comparison != nil
	case *Condition:
		return c != nil && c.Comparison != nil
	default:
		return typeguard.HasField(value, "comparison")
	}
}

// IsRangeCondition returns true when the value is an interval measure value
// filter condition.
func IsRangeCondition(value interface{}) bool {
	switch c := value.(type) {
	case Condition:
		return c.Range != nil
	case *Condition:
		return c != nil && c.Range != nil
	default:
		return typeguard.HasField(value, "range")
	}
}

func asFilter(value interface{}) (FilterItem, bool) {
	switch f := value.(type) {
	case FilterItem:
		return f, true
	case *FilterItem:
		if f == nil {
			return FilterItem{}, true
		}
		return *f, true
	case CompatibilityFilter:
		return f.FilterItem, true
	case *CompatibilityFilter:
		if f == nil {
			return FilterItem{}, true
		}
		return f.FilterItem, true
	default:
		return FilterItem{}, false
	}
}
