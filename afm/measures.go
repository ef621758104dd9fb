package afm

import "github.com/pbenes/gooddata-typings/typeguard"

// MeasureDefinitionType identifies which variant a MeasureDefinition holds.
type MeasureDefinitionType string

const (
	SimpleMeasureDefinitionType         MeasureDefinitionType = "measure"
	PopMeasureDefinitionType            MeasureDefinitionType = "popMeasure"
	PreviousPeriodMeasureDefinitionType MeasureDefinitionType = "previousPeriodMeasure"
	ArithmeticMeasureDefinitionType     MeasureDefinitionType = "arithmeticMeasure"
)

// Aggregation functions accepted by a simple measure definition.
type Aggregation string

const (
	AggregationSum    Aggregation = "sum"
	AggregationCount  Aggregation = "count"
	AggregationAvg    Aggregation = "avg"
	AggregationMin    Aggregation = "min"
	AggregationMax    Aggregation = "max"
	AggregationMedian Aggregation = "median"
	AggregationRunsum Aggregation = "runsum"
)

// ArithmeticOperator functions accepted by an arithmetic measure definition.
type ArithmeticOperator string

const (
	OperatorSum            ArithmeticOperator = "sum"
	OperatorDifference     ArithmeticOperator = "difference"
	OperatorMultiplication ArithmeticOperator = "multiplication"
	OperatorRatio          ArithmeticOperator = "ratio"
	OperatorChange         ArithmeticOperator = "change"
)

// Measure represents a single measure of an execution. The local identifier
// is the caller-assigned name other parts of the execution (sorts, totals,
// derived measures) use to reference it.
type Measure struct {
	LocalIdentifier string            `json:"localIdentifier"`
	Definition      MeasureDefinition `json:"definition"`
	Alias           string            `json:"alias,omitempty"`
	Format          string            `json:"format,omitempty"`
}

// MeasureDefinition holds exactly one measure definition variant. The variant
// is identified on the wire by the single field name only it declares; the
// non-nil pointer is the explicit in-memory discriminant.
type MeasureDefinition struct {
	Measure               *SimpleMeasureDefinition         `json:"measure,omitempty"`
	PopMeasure            *PopMeasureDefinition            `json:"popMeasure,omitempty"`
	PreviousPeriodMeasure *PreviousPeriodMeasureDefinition `json:"previousPeriodMeasure,omitempty"`
	ArithmeticMeasure     *ArithmeticMeasureDefinition     `json:"arithmeticMeasure,omitempty"`
}

// Type returns the variant this definition holds, or the empty string when no
// variant is set. When more than one variant is set the value is malformed;
// Validate reports it and Type returns the first set variant.
func (d MeasureDefinition) Type() MeasureDefinitionType {
	switch {
	case d.Measure != nil:
		return SimpleMeasureDefinitionType
	case d.PopMeasure != nil:
		return PopMeasureDefinitionType
	case d.PreviousPeriodMeasure != nil:
		return PreviousPeriodMeasureDefinitionType
	case d.ArithmeticMeasure != nil:
		return ArithmeticMeasureDefinitionType
	default:
		return ""
	}
}

// Validate checks that exactly one definition variant is set.
func (d MeasureDefinition) Validate() error {
	count := 0
	if d.Measure != nil {
		count++
	}
	if d.PopMeasure != nil {
		count++
	}
	if d.PreviousPeriodMeasure != nil {
		count++
	}
	if d.ArithmeticMeasure != nil {
		count++
	}
	if count == 0 {
		return ErrMissingMeasureDefinition
	}
	if count > 1 {
		return ErrAmbiguousMeasureDefinition
	}
	return nil
}

// SimpleMeasureDefinition represents a plain aggregation over a catalog item,
// optionally filtered and optionally expressed as a ratio of the total.
type SimpleMeasureDefinition struct {
	Item         ObjQualifier `json:"item"`
	Aggregation  Aggregation  `json:"aggregation,omitempty"`
	Filters      []FilterItem `json:"filters,omitempty"`
	ComputeRatio bool         `json:"computeRatio,omitempty"`
}

// PopMeasureDefinition represents a period-over-period derivation of another
// measure, shifted over the given attribute.
type PopMeasureDefinition struct {
	MeasureIdentifier string       `json:"measureIdentifier"`
	PopAttribute      ObjQualifier `json:"popAttribute"`
}

// PreviousPeriodMeasureDefinition represents a derivation of another measure
// shifted back over one or more date data sets.
type PreviousPeriodMeasureDefinition struct {
	MeasureIdentifier string        `json:"measureIdentifier"`
	DateDataSets      []DateDataSet `json:"dateDataSets"`
}

// DateDataSet represents a single date data set shift of a previous period
// measure.
type DateDataSet struct {
	DataSet    ObjQualifier `json:"dataSet"`
	PeriodsAgo int          `json:"periodsAgo"`
}

// ArithmeticMeasureDefinition represents an arithmetic combination of other
// measures referenced by their local identifiers.
type ArithmeticMeasureDefinition struct {
	MeasureIdentifiers []string           `json:"measureIdentifiers"`
	Operator           ArithmeticOperator `json:"operator"`
}

// IsSimpleMeasureDefinition returns true when the value is a simple measure
// definition. Accepts both the typed variants and decoded JSON.
func IsSimpleMeasureDefinition(value interface{}) bool {
	if d, ok := asMeasureDefinition(value); ok {
		return d.Measure != nil
	}
	return typeguard.HasField(value, "measure")
}

// IsPopMeasureDefinition returns true when the value is a period-over-period
// measure definition.
func IsPopMeasureDefinition(value interface{}) bool {
	if d, ok := asMeasureDefinition(value); ok {
		return d.PopMeasure != nil
	}
	return typeguard.HasField(value, "popMeasure")
}

// IsPreviousPeriodMeasureDefinition returns true when the value is a previous
// period measure definition.
func IsPreviousPeriodMeasureDefinition(value interface{}) bool {
	if d, ok := asMeasureDefinition(value); ok {
		return d.PreviousPeriodMeasure != nil
	}
	return typeguard.HasField(value, "previousPeriodMeasure")
}

// IsArithmeticMeasureDefinition returns true when the value is an arithmetic
// measure definition.
func IsArithmeticMeasureDefinition(value interface{}) bool {
	if d, ok := asMeasureDefinition(value); ok {
		return d.ArithmeticMeasure != nil
	}
	return typeguard.HasField(value, "arithmeticMeasure")
}

func asMeasureDefinition(value interface{}) (MeasureDefinition, bool) {
	switch d := value.(type) {
	case MeasureDefinition:
		return d, true
	case *MeasureDefinition:
		if d == nil {
			return MeasureDefinition{}, true
		}
		return *d, true
	default:
		return MeasureDefinition{}, false
	}
}
