package embedding

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		t.Fatalf("failed to decode test fixture: %v", err)
	}
	return value
}

func TestEventType(t *testing.T) {
	t.Parallel()
	Convey("Given a full envelope the event name is extracted", t, func() {
		message := decode(t, `{"gdc": {"product": "analyticalDesigner", "event": {"name": "saveInsight", "data": {"title": "My Insight"}}}}`)

		So(EventType(message), ShouldEqual, "saveInsight")
		So(ProductOf(message), ShouldEqual, ProductAnalyticalDesigner)
	})

	Convey("Given a typed envelope the event name is extracted", t, func() {
		message := NewEvent(ProductKPIDashboard, "dashboardSaved", nil, "ctx-1")

		So(EventType(message), ShouldEqual, "dashboardSaved")
		So(EventType(&message), ShouldEqual, "dashboardSaved")
		So(ProductOf(&message), ShouldEqual, ProductKPIDashboard)
	})

	Convey("Anything short of a full envelope yields the empty string", t, func() {
		inputs := []interface{}{
			nil,
			"saveInsight",
			42,
			map[string]interface{}{},
			decode(t, `{"gdc": null}`),
			decode(t, `{"gdc": {}}`),
			decode(t, `{"gdc": {"event": {}}}`),
			decode(t, `{"gdc": {"event": {"name": 7}}}`),
			decode(t, `{"gdc": {"event": "saveInsight"}}`),
			(*MessageEnvelope)(nil),
		}
		for _, input := range inputs {
			So(EventType(input), ShouldEqual, "")
			So(ProductOf(input), ShouldEqual, "")
		}
	})

	Convey("EventType is idempotent over repeated calls", t, func() {
		message := decode(t, `{"gdc": {"event": {"name": "drill"}}}`)
		So(EventType(message), ShouldEqual, "drill")
		So(EventType(message), ShouldEqual, "drill")
	})
}

func TestIsMessageOf(t *testing.T) {
	t.Parallel()
	Convey("A message matches its own product and name only", t, func() {
		message := decode(t, `{"gdc": {"product": "dashboard", "event": {"name": "drillableItems"}}}`)

		So(IsMessageOf(message, ProductKPIDashboard, "drillableItems"), ShouldBeTrue)
		So(IsMessageOf(message, ProductAnalyticalDesigner, "drillableItems"), ShouldBeFalse)
		So(IsMessageOf(message, ProductKPIDashboard, "saveDashboard"), ShouldBeFalse)
	})

	Convey("Malformed messages never match, even against empty names", t, func() {
		So(IsMessageOf(nil, ProductKPIDashboard, "drillableItems"), ShouldBeFalse)
		So(IsMessageOf(map[string]interface{}{}, "", ""), ShouldBeFalse)
	})
}

func TestNewCommand(t *testing.T) {
	t.Parallel()
	Convey("A built command is a full envelope with a fresh correlation id", t, func() {
		command := NewCommand(ProductAnalyticalDesigner, "saveInsight", map[string]string{"title": "My Insight"})

		So(command.GDC.Product, ShouldEqual, ProductAnalyticalDesigner)
		So(command.GDC.Event.Name, ShouldEqual, "saveInsight")
		So(command.GDC.Event.ContextID, ShouldNotBeEmpty)

		other := NewCommand(ProductAnalyticalDesigner, "saveInsight", nil)
		So(other.GDC.Event.ContextID, ShouldNotEqual, command.GDC.Event.ContextID)

		Convey("and serializes into the three-level wire shape", func() {
			b, err := json.Marshal(command)
			So(err, ShouldBeNil)

			var decoded interface{}
			So(json.Unmarshal(b, &decoded), ShouldBeNil)
			So(EventType(decoded), ShouldEqual, "saveInsight")
			So(IsMessageOf(decoded, ProductAnalyticalDesigner, "saveInsight"), ShouldBeTrue)
		})
	})
}

func TestCommandFailed(t *testing.T) {
	t.Parallel()
	event := NewCommandFailedEvent(ProductKPIDashboard, InvalidArgument, "unknown widget", "ctx-7")

	assert.Equal(t, CommandFailedName, event.GDC.Event.Name)
	assert.Equal(t, "ctx-7", event.GDC.Event.ContextID)
	assert.True(t, IsCommandFailed(event, ProductKPIDashboard))
	assert.False(t, IsCommandFailed(event, ProductAnalyticalDesigner))

	body, ok := event.GDC.Event.Data.(CommandFailedBody)
	assert.True(t, ok)
	assert.Equal(t, InvalidArgument, body.ErrorCode)
	assert.Equal(t, "unknown widget", body.ErrorMessage)
}

func TestErrorCodes(t *testing.T) {
	t.Parallel()
	// wire values, verbatim
	assert.Equal(t, "error:invalidCommand", InvalidCommand)
	assert.Equal(t, "error:invalidArgument", InvalidArgument)
	assert.Equal(t, "error:invalidState", InvalidState)
	assert.Equal(t, "error:runtime", RuntimeError)
}

func TestFilterItemPredicates(t *testing.T) {
	t.Parallel()
	Convey("Embedded filter variants narrow by their marker field", t, func() {
		date := decode(t, `{"dateFilter": {"type": "relative", "granularity": "GDC.time.month", "from": -6, "to": 0}}`)
		attribute := decode(t, `{"attributeFilter": {"displayForm": "label.region", "negativeSelection": false, "attributeElements": ["East"]}}`)

		So(IsDateFilterItem(date), ShouldBeTrue)
		So(IsAttributeFilterItem(date), ShouldBeFalse)
		So(IsAttributeFilterItem(attribute), ShouldBeTrue)
		So(IsDateFilterItem(attribute), ShouldBeFalse)
	})

	Convey("Removal variants narrow by their marker field", t, func() {
		date := decode(t, `{"dataSet": {"identifier": "closed.dataset"}}`)
		attribute := decode(t, `{"displayForm": {"identifier": "label.region"}}`)

		So(IsRemoveDateFilter(date), ShouldBeTrue)
		So(IsRemoveAttributeFilter(date), ShouldBeFalse)
		So(IsRemoveAttributeFilter(attribute), ShouldBeTrue)
		So(IsRemoveDateFilter(attribute), ShouldBeFalse)
	})

	Convey("Resolved filter variants narrow by their marker field", t, func() {
		raw := `{"filters": [
			{"dateFilter": {"granularity": "GDC.time.month", "from": "2026-02-01", "to": "2026-08-31"}},
			{"attributeFilter": {"displayForm": "label.region", "negativeSelection": false, "uris": ["/gdc/md/p1/obj/42?id=1"], "values": ["East"]}}
		]}`
		var context ResolvedFilterContext
		So(json.Unmarshal([]byte(raw), &context), ShouldBeNil)
		So(context.Filters, ShouldHaveLength, 2)

		So(IsResolvedDateFilter(context.Filters[0]), ShouldBeTrue)
		So(IsResolvedAttributeFilter(context.Filters[0]), ShouldBeFalse)
		So(IsResolvedAttributeFilter(&context.Filters[1]), ShouldBeTrue)
		So(IsResolvedDateFilter(&context.Filters[1]), ShouldBeFalse)

		So(context.Filters[0].DateFilter.From, ShouldEqual, "2026-02-01")
		So(context.Filters[1].AttributeFilter.Values, ShouldResemble, []string{"East"})

		decoded := decode(t, `{"dateFilter": {"from": "2026-02-01", "to": "2026-08-31"}}`)
		So(IsResolvedDateFilter(decoded), ShouldBeTrue)
		So(IsResolvedAttributeFilter(decoded), ShouldBeFalse)
	})

	Convey("Typed filter items narrow without decoding", t, func() {
		item := FilterItem{DateFilter: &DateFilter{Type: RelativeDateFilterType}}
		So(IsDateFilterItem(item), ShouldBeTrue)
		So(IsAttributeFilterItem(&item), ShouldBeFalse)
	})

	Convey("Garbage input is rejected by every predicate", t, func() {
		for _, garbage := range []interface{}{nil, "dateFilter", map[string]interface{}{}} {
			So(IsDateFilterItem(garbage), ShouldBeFalse)
			So(IsAttributeFilterItem(garbage), ShouldBeFalse)
			So(IsRemoveDateFilter(garbage), ShouldBeFalse)
			So(IsRemoveAttributeFilter(garbage), ShouldBeFalse)
			So(IsResolvedDateFilter(garbage), ShouldBeFalse)
			So(IsResolvedAttributeFilter(garbage), ShouldBeFalse)
		}
	})
}
