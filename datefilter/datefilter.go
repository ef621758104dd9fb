// Package datefilter describes the extended date filter vocabulary: the
// catalogue of date filter options (all-time, absolute and relative forms
// and presets) a workspace persists to drive its date filter dropdowns.
// Unlike the execution model's unions, these shapes carry an explicit type
// tag on the wire.
package datefilter

import (
	"github.com/pbenes/gooddata-typings/typeguard"
	"github.com/pbenes/gooddata-typings/visualization"
)

// DateFilterOptionType tags each date filter option shape.
type DateFilterOptionType string

const (
	AllTimeType        DateFilterOptionType = "allTime"
	AbsoluteFormType   DateFilterOptionType = "absoluteForm"
	AbsolutePresetType DateFilterOptionType = "absolutePreset"
	RelativeFormType   DateFilterOptionType = "relativeForm"
	RelativePresetType DateFilterOptionType = "relativePreset"
)

// DateFilterGranularity steps a relative date filter moves in.
type DateFilterGranularity string

const (
	GranularityDate    DateFilterGranularity = "GDC.time.date"
	GranularityWeek    DateFilterGranularity = "GDC.time.week_us"
	GranularityMonth   DateFilterGranularity = "GDC.time.month"
	GranularityQuarter DateFilterGranularity = "GDC.time.quarter"
	GranularityYear    DateFilterGranularity = "GDC.time.year"
)

// AllTimeDateFilterOption represents the unbounded option.
type AllTimeDateFilterOption struct {
	LocalIdentifier string               `json:"localIdentifier"`
	Type            DateFilterOptionType `json:"type"`
	Name            string               `json:"name,omitempty"`
	Visible         bool                 `json:"visible"`
}

// AbsoluteDateFilterForm represents the open-ended absolute interval picker.
type AbsoluteDateFilterForm struct {
	LocalIdentifier string               `json:"localIdentifier"`
	Type            DateFilterOptionType `json:"type"`
	Name            string               `json:"name,omitempty"`
	Visible         bool                 `json:"visible"`
	From            string               `json:"from,omitempty"`
	To              string               `json:"to,omitempty"`
}

// AbsoluteDateFilterPreset represents a fixed absolute interval offered as a
// one-click option.
type AbsoluteDateFilterPreset struct {
	LocalIdentifier string               `json:"localIdentifier"`
	Type            DateFilterOptionType `json:"type"`
	Name            string               `json:"name,omitempty"`
	Visible         bool                 `json:"visible"`
	From            string               `json:"from"`
	To              string               `json:"to"`
}

// RelativeDateFilterForm represents the open-ended relative interval picker.
type RelativeDateFilterForm struct {
	LocalIdentifier        string                  `json:"localIdentifier"`
	Type                   DateFilterOptionType    `json:"type"`
	Name                   string                  `json:"name,omitempty"`
	Visible                bool                    `json:"visible"`
	From                   *int                    `json:"from,omitempty"`
	To                     *int                    `json:"to,omitempty"`
	Granularity            DateFilterGranularity   `json:"granularity,omitempty"`
	AvailableGranularities []DateFilterGranularity `json:"availableGranularities"`
}

// RelativeDateFilterPreset represents a fixed relative interval offered as a
// one-click option, e.g. last 7 days.
type RelativeDateFilterPreset struct {
	LocalIdentifier string                `json:"localIdentifier"`
	Type            DateFilterOptionType  `json:"type"`
	Name            string                `json:"name,omitempty"`
	Visible         bool                  `json:"visible"`
	From            int                   `json:"from"`
	To              int                   `json:"to"`
	Granularity     DateFilterGranularity `json:"granularity"`
}

// DateFilterConfig represents the persisted date filter configuration object
// of a workspace.
type DateFilterConfig struct {
	Meta    visualization.ObjectMeta `json:"meta"`
	Content DateFilterConfigContent  `json:"content"`
}

// DateFilterConfigContent lists the options offered by a workspace's date
// filter, with the locally identified default selection.
type DateFilterConfigContent struct {
	SelectedOption  string                     `json:"selectedOption"`
	AllTime         *AllTimeDateFilterOption   `json:"allTime,omitempty"`
	AbsoluteForm    *AbsoluteDateFilterForm    `json:"absoluteForm,omitempty"`
	RelativeForm    *RelativeDateFilterForm    `json:"relativeForm,omitempty"`
	AbsolutePresets []AbsoluteDateFilterPreset `json:"absolutePresets,omitempty"`
	RelativePresets []RelativeDateFilterPreset `json:"relativePresets,omitempty"`
}

// IsAllTimeDateFilterOption returns true when the value is the all-time
// option. Accepts both the typed shapes and decoded JSON.
func IsAllTimeDateFilterOption(value interface{}) bool {
	return optionType(value) == AllTimeType
}

// IsAbsoluteDateFilterForm returns true when the value is the absolute
// interval picker option.
func IsAbsoluteDateFilterForm(value interface{}) bool {
	return optionType(value) == AbsoluteFormType
}

// IsAbsoluteDateFilterPreset returns true when the value is a fixed absolute
// interval option.
func IsAbsoluteDateFilterPreset(value interface{}) bool {
	return optionType(value) == AbsolutePresetType
}

// IsRelativeDateFilterForm returns true when the value is the relative
// interval picker option.
func IsRelativeDateFilterForm(value interface{}) bool {
	return optionType(value) == RelativeFormType
}

// IsRelativeDateFilterPreset returns true when the value is a fixed relative
// interval option.
func IsRelativeDateFilterPreset(value interface{}) bool {
	return optionType(value) == RelativePresetType
}

func optionType(value interface{}) DateFilterOptionType {
	switch option := value.(type) {
	case AllTimeDateFilterOption:
		return option.Type
	case *AllTimeDateFilterOption:
		if option == nil {
			return ""
		}
		return option.Type
	case AbsoluteDateFilterForm:
		return option.Type
	case *AbsoluteDateFilterForm:
		if option == nil {
			return ""
		}
		return option.Type
	case AbsoluteDateFilterPreset:
		return option.Type
	case *AbsoluteDateFilterPreset:
		if option == nil {
			return ""
		}
		return option.Type
	case RelativeDateFilterForm:
		return option.Type
	case *RelativeDateFilterForm:
		if option == nil {
			return ""
		}
		return option.Type
	case RelativeDateFilterPreset:
		return option.Type
	case *RelativeDateFilterPreset:
		if option == nil {
			return ""
		}
		return option.Type
	default:
		return DateFilterOptionType(typeguard.StringField(value, "type"))
	}
}
