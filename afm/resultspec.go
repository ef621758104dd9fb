package afm

import "github.com/pbenes/gooddata-typings/typeguard"

// MeasureGroupIdentifier is the reserved item identifier placing the measure
// group into a result dimension.
const MeasureGroupIdentifier = "measureGroup"

// SortDirection of a sort item.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// TotalType identifies a roll-up function of a total.
type TotalType string

const (
	TotalSum    TotalType = "sum"
	TotalMax    TotalType = "max"
	TotalMin    TotalType = "min"
	TotalAvg    TotalType = "avg"
	TotalMedian TotalType = "med"
	TotalNative TotalType = "nat"
)

// ResultSpec describes how the execution result should be laid out: which
// declared items form each dimension and how the data is sorted.
type ResultSpec struct {
	Dimensions []Dimension `json:"dimensions,omitempty"`
	Sorts      []SortItem  `json:"sorts,omitempty"`
}

// Dimension lists the local identifiers (or the reserved measureGroup
// identifier) laid out along one axis of the result, plus any totals rolled
// up over them.
type Dimension struct {
	ItemIdentifiers []string `json:"itemIdentifiers"`
	Totals          []Total  `json:"totals,omitempty"`
}

// Total represents a roll-up of one measure grouped by one attribute.
type Total struct {
	Type                TotalType `json:"type"`
	MeasureIdentifier   string    `json:"measureIdentifier"`
	AttributeIdentifier string    `json:"attributeIdentifier"`
}

// NativeTotal carries the attribute scope a backend needs to compute a
// native (nat) total of a measure.
type NativeTotal struct {
	MeasureIdentifier    string   `json:"measureIdentifier"`
	AttributeIdentifiers []string `json:"attributeIdentifiers"`
}

// SortItem holds exactly one sort variant.
type SortItem struct {
	AttributeSortItem *AttributeSortItem `json:"attributeSortItem,omitempty"`
	MeasureSortItem   *MeasureSortItem   `json:"measureSortItem,omitempty"`
}

// AttributeSortItem sorts by the values of a declared attribute, optionally
// by the sum aggregation across the other dimension instead.
type AttributeSortItem struct {
	Direction           SortDirection `json:"direction"`
	AttributeIdentifier string        `json:"attributeIdentifier"`
	Aggregation         string        `json:"aggregation,omitempty"`
}

// MeasureSortItem sorts by the values of a measure, pinned to concrete
// attribute elements by its locators.
type MeasureSortItem struct {
	Direction SortDirection `json:"direction"`
	Locators  []LocatorItem `json:"locators"`
}

// LocatorItem holds exactly one locator variant of a measure sort.
type LocatorItem struct {
	AttributeLocatorItem *AttributeLocatorItem `json:"attributeLocatorItem,omitempty"`
	MeasureLocatorItem   *MeasureLocatorItem   `json:"measureLocatorItem,omitempty"`
}

// AttributeLocatorItem pins a measure sort to one element of an attribute.
type AttributeLocatorItem struct {
	AttributeIdentifier string `json:"attributeIdentifier"`
	Element             string `json:"element"`
}

// MeasureLocatorItem pins a measure sort to a declared measure.
type MeasureLocatorItem struct {
	MeasureIdentifier string `json:"measureIdentifier"`
}

// IsAttributeSortItem returns true when the value is an attribute sort item.
// Accepts both the typed union and decoded JSON.
func IsAttributeSortItem(value interface{}) bool {
	switch s := value.(type) {
	case SortItem:
		return s.AttributeSortItem != nil
	case *SortItem:
		return s != nil && s.AttributeSortItem != nil
	default:
		return typeguard.HasField(value, "attributeSortItem")
	}
}

// IsMeasureSortItem returns true when the value is a measure sort item.
func IsMeasureSortItem(value interface{}) bool {
	switch s := value.(type) {
	case SortItem:
		return s.MeasureSortItem != nil
	case *SortItem:
		return s != nil && s.MeasureSortItem != nil
	default:
		return typeguard.HasField(value, "measureSortItem")
	}
}

// IsAttributeLocatorItem returns true when the value is an attribute locator
// of a measure sort.
func IsAttributeLocatorItem(value interface{}) bool {
	switch l := value.(type) {
	case LocatorItem:
		return l.AttributeLocatorItem != nil
	case *LocatorItem:
		return l != nil && l.AttributeLocatorItem != nil
	default:
		return typeguard.HasField(value, "attributeLocatorItem")
	}
}

// IsMeasureLocatorItem returns true when the value is a measure locator of a
// measure sort.
func IsMeasureLocatorItem(value interface{}) bool {
	switch l := value.(type) {
	case LocatorItem:
		return l.MeasureLocatorItem != nil
	case *LocatorItem:
		return l != nil && l.MeasureLocatorItem != nil
	default:
		return typeguard.HasField(value, "measureLocatorItem")
	}
}
