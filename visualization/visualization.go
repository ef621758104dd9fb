// Package visualization describes the persisted visualization object: the
// named, identifier-addressed document an analytics editor saves. It
// references a visualization class and carries buckets of measures and
// attributes, filters and free-form serialized properties.
package visualization

import (
	"encoding/json"
	"errors"
	"io"

	uuid "github.com/satori/go.uuid"

	"github.com/pbenes/gooddata-typings/afm"
	"github.com/pbenes/gooddata-typings/typeguard"
)

// VisualizationObjectWrapper represents the document a visualization object
// is stored in.
type VisualizationObjectWrapper struct {
	VisualizationObject *VisualizationObject `json:"visualizationObject"`
}

// VisualizationObject represents a single persisted visualization.
type VisualizationObject struct {
	Meta    ObjectMeta                 `json:"meta"`
	Content VisualizationObjectContent `json:"content"`
}

// ObjectMeta represents the metadata stored against any persisted object.
// Identifiers and uris are issued by the persistence store; timestamps use
// the store's YYYY-MM-DD HH:mm:ss form.
type ObjectMeta struct {
	Author            string `json:"author,omitempty"`
	Category          string `json:"category,omitempty"`
	Contributor       string `json:"contributor,omitempty"`
	Created           string `json:"created,omitempty"`
	Deprecated        bool   `json:"deprecated,omitempty"`
	Identifier        string `json:"identifier,omitempty"`
	IsProduction      bool   `json:"isProduction,omitempty"`
	Locked            bool   `json:"locked,omitempty"`
	SharedWithSomeone bool   `json:"sharedWithSomeone,omitempty"`
	Summary           string `json:"summary,omitempty"`
	Tags              string `json:"tags,omitempty"`
	Title             string `json:"title"`
	Unlisted          bool   `json:"unlisted,omitempty"`
	Updated           string `json:"updated,omitempty"`
	URI               string `json:"uri,omitempty"`
}

// VisualizationObjectContent represents the content of a visualization
// object. Properties carries the editor's free-form configuration as a
// serialized JSON string; this library does not interpret it.
type VisualizationObjectContent struct {
	VisualizationClass afm.ObjQualifier          `json:"visualizationClass"`
	Buckets            []Bucket                  `json:"buckets"`
	Filters            []afm.CompatibilityFilter `json:"filters,omitempty"`
	Properties         string                    `json:"properties,omitempty"`
	References         map[string]string         `json:"references,omitempty"`
}

// Bucket groups the measures or attributes filling one slot of a
// visualization, e.g. its rows, columns or segmentation.
type Bucket struct {
	LocalIdentifier string       `json:"localIdentifier,omitempty"`
	Items           []BucketItem `json:"items"`
	Totals          []Total      `json:"totals,omitempty"`
}

// Total represents a roll-up of one measure grouped by one attribute,
// optionally renamed for display.
type Total struct {
	Type                afm.TotalType `json:"type"`
	MeasureIdentifier   string        `json:"measureIdentifier"`
	AttributeIdentifier string        `json:"attributeIdentifier"`
	Alias               string        `json:"alias,omitempty"`
}

// BucketItem holds exactly one bucket item variant.
type BucketItem struct {
	Measure                *Measure                `json:"measure,omitempty"`
	VisualizationAttribute *VisualizationAttribute `json:"visualizationAttribute,omitempty"`
}

// Measure represents a measure placed in a bucket.
type Measure struct {
	LocalIdentifier string            `json:"localIdentifier"`
	Definition      MeasureDefinition `json:"definition"`
	Alias           string            `json:"alias,omitempty"`
	Format          string            `json:"format,omitempty"`
	Title           string            `json:"title,omitempty"`
}

// VisualizationAttribute represents an attribute placed in a bucket.
type VisualizationAttribute struct {
	LocalIdentifier string           `json:"localIdentifier"`
	DisplayForm     afm.ObjQualifier `json:"displayForm"`
	Alias           string           `json:"alias,omitempty"`
}

// MeasureDefinition holds exactly one measure definition variant. The marker
// field names differ from the execution model's, matching the persistence
// format, but the variant bodies are the same shapes.
type MeasureDefinition struct {
	MeasureDefinition     *afm.SimpleMeasureDefinition         `json:"measureDefinition,omitempty"`
	PopMeasureDefinition  *afm.PopMeasureDefinition            `json:"popMeasureDefinition,omitempty"`
	PreviousPeriodMeasure *afm.PreviousPeriodMeasureDefinition `json:"previousPeriodMeasure,omitempty"`
	ArithmeticMeasure     *afm.ArithmeticMeasureDefinition     `json:"arithmeticMeasure,omitempty"`
}

// IsMeasure returns true when the value is a measure bucket item. Accepts
// both the typed union and decoded JSON.
func IsMeasure(value interface{}) bool {
	switch item := value.(type) {
	case BucketItem:
		return item.Measure != nil
	case *BucketItem:
		return item != nil && item.Measure != nil
	default:
		return typeguard.HasField(value, "measure")
	}
}

// IsAttribute returns true when the value is an attribute bucket item.
func IsAttribute(value interface{}) bool {
	switch item := value.(type) {
	case BucketItem:
		return item.VisualizationAttribute != nil
	case *BucketItem:
		return item != nil && item.VisualizationAttribute != nil
	default:
		return typeguard.HasField(value, "visualizationAttribute")
	}
}

// IsMeasureDefinition returns true when the value is a plain measure
// definition of a persisted visualization.
func IsMeasureDefinition(value interface{}) bool {
	if d, ok := asMeasureDefinition(value); ok {
		return d.MeasureDefinition != nil
	}
	return typeguard.HasField(value, "measureDefinition")
}

// IsPopMeasureDefinition returns true when the value is a period-over-period
// measure definition of a persisted visualization.
func IsPopMeasureDefinition(value interface{}) bool {
	if d, ok := asMeasureDefinition(value); ok {
		return d.PopMeasureDefinition != nil
	}
	return typeguard.HasField(value, "popMeasureDefinition")
}

// IsPreviousPeriodMeasureDefinition returns true when the value is a previous
// period measure definition of a persisted visualization.
func IsPreviousPeriodMeasureDefinition(value interface{}) bool {
	if d, ok := asMeasureDefinition(value); ok {
		return d.PreviousPeriodMeasure != nil
	}
	return typeguard.HasField(value, "previousPeriodMeasure")
}

// IsArithmeticMeasureDefinition returns true when the value is an arithmetic
// measure definition of a persisted visualization.
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

// CreateVisualizationObject manages the creation of a visualization object
// from a reader. Objects arriving without an identifier are assigned one.
func CreateVisualizationObject(reader io.Reader) (*VisualizationObject, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.New("failed to read message body")
	}

	var visualization VisualizationObject
	if err = json.Unmarshal(b, &visualization); err != nil {
		return nil, errors.New("failed to parse json body")
	}

	if visualization.Meta.Identifier == "" {
		visualization.Meta.Identifier = uuid.NewV4().String()
	}

	return &visualization, nil
}
