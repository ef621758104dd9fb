package analyticaldesigner

import (
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/pbenes/gooddata-typings/embedding"
	"github.com/pbenes/gooddata-typings/embedding/kpidashboard"
)

// every protocol predicate of both products, keyed for failure messages
var allPredicates = map[string]func(interface{}) bool{
	"ad.drillableItems":             IsDrillableItemsCommand,
	"ad.openInsight":                IsOpenInsightCommand,
	"ad.saveInsight":                IsSaveCommand,
	"ad.saveAsInsight":              IsSaveAsCommand,
	"ad.exportInsight":              IsExportCommand,
	"ad.undo":                       IsUndoCommand,
	"ad.redo":                       IsRedoCommand,
	"ad.clear":                      IsClearCommand,
	"ad.requestCancellation":        IsRequestCancellationCommand,
	"ad.setFilterContext":           IsSetFilterContextCommand,
	"ad.removeFilterContext":        IsRemoveFilterContextCommand,
	"ad.listeningForDrillableItems": IsListeningForDrillableItemsEvent,
	"ad.newInsightInitialized":      IsNewInsightInitializedEvent,
	"ad.insightOpened":              IsInsightOpenedEvent,
	"ad.insightRendered":            IsInsightRenderedEvent,
	"ad.insightSaved":               IsInsightSavedEvent,
	"ad.undoFinished":               IsUndoFinishedEvent,
	"ad.redoFinished":               IsRedoFinishedEvent,
	"ad.exportInsightFinished":      IsExportFinishedEvent,
	"ad.clearFinished":              IsClearFinishedEvent,
	"ad.availableCommands":          IsAvailableCommandsEvent,
	"ad.drill":                      IsDrillEvent,
	"ad.platform":                   IsPlatformEvent,
	"kd.saveDashboard":              kpidashboard.IsSaveCommand,
	"kd.cancelEdit":                 kpidashboard.IsCancelEditCommand,
	"kd.switchToEdit":               kpidashboard.IsSwitchToEditCommand,
	"kd.deleteDashboard":            kpidashboard.IsDeleteDashboardCommand,
	"kd.addWidget":                  kpidashboard.IsAddWidgetCommand,
	"kd.addFilter":                  kpidashboard.IsAddFilterCommand,
	"kd.exportToPdf":                kpidashboard.IsExportToPDFCommand,
	"kd.drillableItems":             kpidashboard.IsDrillableItemsCommand,
	"kd.setFilterContext":           kpidashboard.IsSetFilterContextCommand,
	"kd.removeFilterContext":        kpidashboard.IsRemoveFilterContextCommand,
	"kd.loaded":                     kpidashboard.IsLoadedEvent,
	"kd.dashboardCreated":           kpidashboard.IsDashboardCreatedEvent,
	"kd.dashboardSaved":             kpidashboard.IsDashboardSavedEvent,
	"kd.dashboardUpdated":           kpidashboard.IsDashboardUpdatedEvent,
	"kd.dashboardDeleted":           kpidashboard.IsDashboardDeletedEvent,
	"kd.switchedToEdit":             kpidashboard.IsSwitchedToEditEvent,
	"kd.switchedToView":             kpidashboard.IsSwitchedToViewEvent,
	"kd.widgetAdded":                kpidashboard.IsWidgetAddedEvent,
	"kd.filterAdded":                kpidashboard.IsFilterAddedEvent,
	"kd.exportedToPdf":              kpidashboard.IsExportedToPDFEvent,
	"kd.listeningForDrillableItems": kpidashboard.IsListeningForDrillableItemsEvent,
	"kd.drill":                      kpidashboard.IsDrillEvent,
	"kd.platform":                   kpidashboard.IsPlatformEvent,
}

func TestSaveCommandRoundTrip(t *testing.T) {
	t.Parallel()
	Convey("Given the saveInsight envelope from a host page", t, func() {
		var message interface{}
		raw := `{"gdc": {"product": "analyticalDesigner", "event": {"name": "saveInsight", "data": {"title": "My Insight"}}}}`
		So(json.Unmarshal([]byte(raw), &message), ShouldBeNil)

		Convey("the event name is extracted", func() {
			So(embedding.EventType(message), ShouldEqual, CommandSave)
		})

		Convey("the save predicate matches and no other predicate of either product does", func() {
			for name, predicate := range allPredicates {
				if name == "ad.saveInsight" {
					So(predicate(message), ShouldBeTrue)
					continue
				}
				So(predicate(message), ShouldBeFalse)
			}
		})
	})
}

func TestPredicateCoverage(t *testing.T) {
	t.Parallel()
	Convey("Every vocabulary name matches its own predicate and no other", t, func() {
		for key, predicate := range allPredicates {
			product := Product
			if strings.HasPrefix(key, "kd.") {
				product = kpidashboard.Product
			}
			message := embedding.NewEvent(product, key[3:], nil, "")

			So(predicate(message), ShouldBeTrue)
			for other, otherPredicate := range allPredicates {
				if other == key {
					continue
				}
				So(otherPredicate(message), ShouldBeFalse)
			}
		}
	})
}

func TestProductScoping(t *testing.T) {
	t.Parallel()
	Convey("drillableItems exists in both products and never cross-matches", t, func() {
		adMessage := NewDrillableItemsCommand([]string{"/gdc/md/p1/obj/1"}, nil)
		So(IsDrillableItemsCommand(adMessage), ShouldBeTrue)
		So(kpidashboard.IsDrillableItemsCommand(adMessage), ShouldBeFalse)
	})
}

func TestCommandConstructors(t *testing.T) {
	t.Parallel()
	Convey("Constructed commands match their own predicate", t, func() {
		So(IsSaveCommand(NewSaveCommand("My Insight")), ShouldBeTrue)
		So(IsExportCommand(NewExportCommand(ExportBody{Format: "xlsx", MergeHeaders: true})), ShouldBeTrue)
		So(IsSetFilterContextCommand(NewSetFilterContextCommand(nil)), ShouldBeTrue)

		command := NewDrillableItemsCommand([]string{"/gdc/md/p1/obj/1"}, []string{"attr.revenue"})
		So(IsDrillableItemsCommand(command), ShouldBeTrue)
		body, ok := command.GDC.Event.Data.(DrillableItemsBody)
		So(ok, ShouldBeTrue)
		So(body.Identifiers, ShouldResemble, []string{"attr.revenue"})
	})
}

func TestMalformedMessages(t *testing.T) {
	t.Parallel()
	Convey("No predicate matches malformed input", t, func() {
		inputs := []interface{}{
			nil,
			"saveInsight",
			map[string]interface{}{},
			map[string]interface{}{"gdc": map[string]interface{}{}},
		}
		for _, input := range inputs {
			for _, predicate := range allPredicates {
				So(predicate(input), ShouldBeFalse)
			}
		}
	})
}
