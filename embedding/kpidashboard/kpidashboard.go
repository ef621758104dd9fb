// Package kpidashboard declares the closed command and event vocabulary of
// the embedded dashboard viewer/editor, together with the payload shapes
// the names travel with.
package kpidashboard

import "github.com/pbenes/gooddata-typings/embedding"

// Product is the product name dashboard messages travel under.
const Product = embedding.ProductKPIDashboard

// Commands accepted by the embedded dashboard. These are wire values.
const (
	CommandSave                = "saveDashboard"
	CommandCancelEdit          = "cancelEdit"
	CommandSwitchToEdit        = "switchToEdit"
	CommandDeleteDashboard     = "deleteDashboard"
	CommandAddWidget           = "addWidget"
	CommandAddFilter           = "addFilter"
	CommandExportToPDF         = "exportToPdf"
	CommandDrillableItems      = "drillableItems"
	CommandSetFilterContext    = "setFilterContext"
	CommandRemoveFilterContext = "removeFilterContext"
)

// Events emitted by the embedded dashboard. These are wire values.
const (
	EventLoaded                     = "loaded"
	EventDashboardCreated           = "dashboardCreated"
	EventDashboardSaved             = "dashboardSaved"
	EventDashboardUpdated           = "dashboardUpdated"
	EventDashboardDeleted           = "dashboardDeleted"
	EventSwitchedToEdit             = "switchedToEdit"
	EventSwitchedToView             = "switchedToView"
	EventWidgetAdded                = "widgetAdded"
	EventFilterAdded                = "filterAdded"
	EventExportedToPDF              = "exportedToPdf"
	EventListeningForDrillableItems = "listeningForDrillableItems"
	EventDrill                      = "drill"
	EventPlatform                   = "platform"
)

// SaveBody names the dashboard being saved.
type SaveBody struct {
	Title string `json:"title"`
}

// DashboardRef identifies a persisted dashboard in event payloads.
type DashboardRef struct {
	URI        string `json:"uri"`
	Identifier string `json:"identifier,omitempty"`
	Title      string `json:"title,omitempty"`
}

// DashboardBody carries the dashboard an event concerns.
type DashboardBody struct {
	Dashboard DashboardRef `json:"dashboard"`
}

// AddWidgetBody selects the insight to place as a new widget.
type AddWidgetBody struct {
	Widget WidgetRef `json:"widget"`
}

// WidgetRef references the insight backing a widget.
type WidgetRef struct {
	URI string `json:"uri"`
}

// ExportedToPDFBody carries the link an exported dashboard can be downloaded
// from.
type ExportedToPDFBody struct {
	Link string `json:"link"`
}

// IsSaveCommand returns true when the message is this product's
// saveDashboard command.
func IsSaveCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandSave)
}

// IsCancelEditCommand returns true when the message is the cancelEdit
// command.
func IsCancelEditCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandCancelEdit)
}

// IsSwitchToEditCommand returns true when the message is the switchToEdit
// command.
func IsSwitchToEditCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandSwitchToEdit)
}

// IsDeleteDashboardCommand returns true when the message is the
// deleteDashboard command.
func IsDeleteDashboardCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandDeleteDashboard)
}

// IsAddWidgetCommand returns true when the message is the addWidget command.
func IsAddWidgetCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandAddWidget)
}

// IsAddFilterCommand returns true when the message is the addFilter command.
func IsAddFilterCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandAddFilter)
}

// IsExportToPDFCommand returns true when the message is the exportToPdf
// command.
func IsExportToPDFCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandExportToPDF)
}

// IsDrillableItemsCommand returns true when the message is this product's
// drillableItems command.
func IsDrillableItemsCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandDrillableItems)
}

// IsSetFilterContextCommand returns true when the message is the
// setFilterContext command.
func IsSetFilterContextCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandSetFilterContext)
}

// IsRemoveFilterContextCommand returns true when the message is the
// removeFilterContext command.
func IsRemoveFilterContextCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandRemoveFilterContext)
}

// IsLoadedEvent returns true when the message is the loaded event.
func IsLoadedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventLoaded)
}

// IsDashboardCreatedEvent returns true when the message is the
// dashboardCreated event.
func IsDashboardCreatedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventDashboardCreated)
}

// IsDashboardSavedEvent returns true when the message is the dashboardSaved
// event.
func IsDashboardSavedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventDashboardSaved)
}

// IsDashboardUpdatedEvent returns true when the message is the
// dashboardUpdated event.
func IsDashboardUpdatedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventDashboardUpdated)
}

// IsDashboardDeletedEvent returns true when the message is the
// dashboardDeleted event.
func IsDashboardDeletedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventDashboardDeleted)
}

// IsSwitchedToEditEvent returns true when the message is the switchedToEdit
// event.
func IsSwitchedToEditEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventSwitchedToEdit)
}

// IsSwitchedToViewEvent returns true when the message is the switchedToView
// event.
func IsSwitchedToViewEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventSwitchedToView)
}

// IsWidgetAddedEvent returns true when the message is the widgetAdded event.
func IsWidgetAddedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventWidgetAdded)
}

// IsFilterAddedEvent returns true when the message is the filterAdded event.
func IsFilterAddedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventFilterAdded)
}

// IsExportedToPDFEvent returns true when the message is the exportedToPdf
// event.
func IsExportedToPDFEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventExportedToPDF)
}

// IsListeningForDrillableItemsEvent returns true when the message is this
// product's listeningForDrillableItems event.
func IsListeningForDrillableItemsEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventListeningForDrillableItems)
}

// IsDrillEvent returns true when the message is the drill event.
func IsDrillEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventDrill)
}

// IsPlatformEvent returns true when the message is the platform event.
func IsPlatformEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventPlatform)
}

// NewSaveCommand builds a saveDashboard command envelope.
func NewSaveCommand(title string) embedding.MessageEnvelope {
	return embedding.NewCommand(Product, CommandSave, SaveBody{Title: title})
}

// NewAddWidgetCommand builds an addWidget command envelope.
func NewAddWidgetCommand(insightURI string) embedding.MessageEnvelope {
	return embedding.NewCommand(Product, CommandAddWidget, AddWidgetBody{Widget: WidgetRef{URI: insightURI}})
}

// NewExportToPDFCommand builds an exportToPdf command envelope.
func NewExportToPDFCommand() embedding.MessageEnvelope {
	return embedding.NewCommand(Product, CommandExportToPDF, nil)
}

// NewDashboardSavedEvent builds a dashboardSaved event envelope.
func NewDashboardSavedEvent(dashboard DashboardRef, contextID string) embedding.MessageEnvelope {
	return embedding.NewEvent(Product, EventDashboardSaved, DashboardBody{Dashboard: dashboard}, contextID)
}
