package datefilter

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const inputDateFilterConfig = `{
	"meta": {"title": "Default date filter config", "identifier": "dateFilterConfig.default"},
	"content": {
		"selectedOption": "last_7_days",
		"allTime": {"localIdentifier": "all_time", "type": "allTime", "visible": true},
		"absoluteForm": {"localIdentifier": "absolute_form", "type": "absoluteForm", "visible": true},
		"relativeForm": {
			"localIdentifier": "relative_form",
			"type": "relativeForm",
			"visible": true,
			"availableGranularities": ["GDC.time.date", "GDC.time.month", "GDC.time.year"]
		},
		"absolutePresets": [
			{"localIdentifier": "christmas_2019", "type": "absolutePreset", "visible": true, "from": "2019-12-24", "to": "2019-12-26"}
		],
		"relativePresets": [
			{"localIdentifier": "last_7_days", "type": "relativePreset", "visible": true, "from": -6, "to": 0, "granularity": "GDC.time.date"}
		]
	}
}`

func TestDateFilterConfig(t *testing.T) {
	t.Parallel()
	Convey("A persisted date filter config decodes with every option family", t, func() {
		var config DateFilterConfig
		So(json.Unmarshal([]byte(inputDateFilterConfig), &config), ShouldBeNil)

		content := config.Content
		So(content.SelectedOption, ShouldEqual, "last_7_days")
		So(content.AllTime, ShouldNotBeNil)
		So(content.AllTime.Type, ShouldEqual, AllTimeType)
		So(content.RelativeForm.AvailableGranularities, ShouldContain, GranularityMonth)
		So(content.AbsolutePresets[0].From, ShouldEqual, "2019-12-24")
		So(content.RelativePresets[0].From, ShouldEqual, -6)
		So(content.RelativePresets[0].Granularity, ShouldEqual, GranularityDate)
	})
}

func TestDateFilterOptionPredicates(t *testing.T) {
	t.Parallel()
	Convey("Each option narrows by its type tag", t, func() {
		var decoded map[string]interface{}
		So(json.Unmarshal([]byte(inputDateFilterConfig), &decoded), ShouldBeNil)
		content := decoded["content"].(map[string]interface{})

		So(IsAllTimeDateFilterOption(content["allTime"]), ShouldBeTrue)
		So(IsAbsoluteDateFilterForm(content["allTime"]), ShouldBeFalse)

		So(IsAbsoluteDateFilterForm(content["absoluteForm"]), ShouldBeTrue)
		So(IsRelativeDateFilterForm(content["absoluteForm"]), ShouldBeFalse)

		So(IsRelativeDateFilterForm(content["relativeForm"]), ShouldBeTrue)
		So(IsAllTimeDateFilterOption(content["relativeForm"]), ShouldBeFalse)

		preset := content["absolutePresets"].([]interface{})[0]
		So(IsAbsoluteDateFilterPreset(preset), ShouldBeTrue)
		So(IsRelativeDateFilterPreset(preset), ShouldBeFalse)

		preset = content["relativePresets"].([]interface{})[0]
		So(IsRelativeDateFilterPreset(preset), ShouldBeTrue)
		So(IsAbsoluteDateFilterPreset(preset), ShouldBeFalse)
	})

	Convey("Typed options narrow without decoding", t, func() {
		So(IsAllTimeDateFilterOption(AllTimeDateFilterOption{Type: AllTimeType}), ShouldBeTrue)
		So(IsRelativeDateFilterPreset(&RelativeDateFilterPreset{Type: RelativePresetType}), ShouldBeTrue)
		So(IsAbsoluteDateFilterPreset(AllTimeDateFilterOption{Type: AllTimeType}), ShouldBeFalse)
	})

	Convey("Garbage input is rejected by every predicate", t, func() {
		for _, garbage := range []interface{}{nil, "allTime", 1, map[string]interface{}{}, map[string]interface{}{"type": 3}} {
			So(IsAllTimeDateFilterOption(garbage), ShouldBeFalse)
			So(IsAbsoluteDateFilterForm(garbage), ShouldBeFalse)
			So(IsAbsoluteDateFilterPreset(garbage), ShouldBeFalse)
			So(IsRelativeDateFilterForm(garbage), ShouldBeFalse)
			So(IsRelativeDateFilterPreset(garbage), ShouldBeFalse)
		}
	})
}
