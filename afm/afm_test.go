package afm

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCreateExecution(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the execution has all fields", func() {
			b, err := json.Marshal(inputExecution)
			So(err, ShouldBeNil)

			execution, err := CreateExecution(bytes.NewReader(b))
			So(err, ShouldBeNil)

			afm := execution.Execution.AFM
			So(afm.Attributes, ShouldHaveLength, 1)
			So(afm.Attributes[0].DisplayForm.Identifier, ShouldEqual, "label.region")
			So(afm.Attributes[0].LocalIdentifier, ShouldEqual, "a1")
			So(afm.Measures, ShouldHaveLength, 3)
			So(afm.Measures[0].Definition.Type(), ShouldEqual, SimpleMeasureDefinitionType)
			So(afm.Measures[1].Definition.Type(), ShouldEqual, PopMeasureDefinitionType)
			So(afm.Measures[2].Definition.Type(), ShouldEqual, ArithmeticMeasureDefinitionType)
			So(afm.Filters, ShouldHaveLength, 2)
			So(afm.Filters[0].Kind(), ShouldEqual, PositiveAttributeFilterKind)
			So(afm.Filters[1].Kind(), ShouldEqual, RelativeDateFilterKind)
			So(afm.NativeTotals, ShouldHaveLength, 1)

			resultSpec := execution.Execution.ResultSpec
			So(resultSpec, ShouldNotBeNil)
			So(resultSpec.Dimensions, ShouldHaveLength, 2)
			So(resultSpec.Dimensions[1].ItemIdentifiers[0], ShouldEqual, MeasureGroupIdentifier)
			So(resultSpec.Sorts, ShouldHaveLength, 2)
		})
	})

	Convey("Return with error when the request body is not json", t, func() {
		execution, err := CreateExecution(strings.NewReader("not json"))
		So(execution, ShouldBeNil)
		So(err, ShouldResemble, errors.New("failed to parse json body"))
	})
}

func TestExecutionJSONShape(t *testing.T) {
	t.Parallel()
	Convey("Given a typed execution", t, func() {
		b, err := json.Marshal(inputExecution)
		So(err, ShouldBeNil)

		var decoded map[string]interface{}
		So(json.Unmarshal(b, &decoded), ShouldBeNil)

		Convey("each union member serializes under its marker field only", func() {
			execution := decoded["execution"].(map[string]interface{})
			afm := execution["afm"].(map[string]interface{})
			measures := afm["measures"].([]interface{})

			definition := measures[0].(map[string]interface{})["definition"]
			So(IsSimpleMeasureDefinition(definition), ShouldBeTrue)
			So(IsPopMeasureDefinition(definition), ShouldBeFalse)

			definition = measures[1].(map[string]interface{})["definition"]
			So(IsPopMeasureDefinition(definition), ShouldBeTrue)
			So(IsSimpleMeasureDefinition(definition), ShouldBeFalse)

			filters := afm["filters"].([]interface{})
			So(IsPositiveAttributeFilter(filters[0]), ShouldBeTrue)
			So(IsRelativeDateFilter(filters[0]), ShouldBeFalse)
			So(IsRelativeDateFilter(filters[1]), ShouldBeTrue)
		})
	})
}

func TestExecutionClone(t *testing.T) {
	t.Parallel()
	Convey("Given a clone of an execution", t, func() {
		original, err := inputExecution.Clone()
		So(err, ShouldBeNil)

		clone, err := original.Clone()
		So(err, ShouldBeNil)

		Convey("it equals the original", func() {
			So(cmp.Diff(original, clone), ShouldBeEmpty)
		})

		Convey("mutating the clone leaves the original untouched", func() {
			clone.Execution.AFM.Measures[0].LocalIdentifier = "changed"
			clone.Execution.AFM.Filters[0].PositiveAttributeFilter.In[0] = "North"
			So(original.Execution.AFM.Measures[0].LocalIdentifier, ShouldEqual, "m1")
			So(original.Execution.AFM.Filters[0].PositiveAttributeFilter.In[0], ShouldEqual, "East")
		})
	})
}
