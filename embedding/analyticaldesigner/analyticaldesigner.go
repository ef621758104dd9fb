// Package analyticaldesigner declares the closed command and event
// vocabulary of the embedded insight editor, together with the payload
// shapes the names travel with.
package analyticaldesigner

import (
	"github.com/pbenes/gooddata-typings/embedding"
	"github.com/pbenes/gooddata-typings/visualization"
)

// Product is the product name insight editor messages travel under.
const Product = embedding.ProductAnalyticalDesigner

// Commands accepted by the embedded insight editor. These are wire values.
const (
	CommandDrillableItems      = "drillableItems"
	CommandOpenInsight         = "openInsight"
	CommandSave                = "saveInsight"
	CommandSaveAs              = "saveAsInsight"
	CommandExport              = "exportInsight"
	CommandUndo                = "undo"
	CommandRedo                = "redo"
	CommandClear               = "clear"
	CommandRequestCancellation = "requestCancellation"
	CommandSetFilterContext    = "setFilterContext"
	CommandRemoveFilterContext = "removeFilterContext"
)

// Events emitted by the embedded insight editor. These are wire values.
const (
	EventListeningForDrillableItems = "listeningForDrillableItems"
	EventNewInsightInitialized      = "newInsightInitialized"
	EventInsightOpened              = "insightOpened"
	EventInsightRendered            = "insightRendered"
	EventInsightSaved               = "insightSaved"
	EventUndoFinished               = "undoFinished"
	EventRedoFinished               = "redoFinished"
	EventExportFinished             = "exportInsightFinished"
	EventClearFinished              = "clearFinished"
	EventAvailableCommands          = "availableCommands"
	EventDrill                      = "drill"
	EventPlatform                   = "platform"
)

// DrillableItemsBody lists the catalog objects drilling is enabled for.
type DrillableItemsBody struct {
	URIs        []string `json:"uris,omitempty"`
	Identifiers []string `json:"identifiers,omitempty"`
}

// OpenInsightBody selects the insight the editor should open.
type OpenInsightBody struct {
	ProjectID              string   `json:"projectId,omitempty"`
	InsightID              string   `json:"insightId,omitempty"`
	Dataset                string   `json:"dataset,omitempty"`
	IncludeObjectsWithTags []string `json:"includeObjectsWithTags,omitempty"`
	ExcludeObjectsWithTags []string `json:"excludeObjectsWithTags,omitempty"`
}

// SaveBody names the insight being saved.
type SaveBody struct {
	Title string `json:"title"`
}

// ExportBody configures an insight export.
type ExportBody struct {
	Format               string `json:"format"`
	Title                string `json:"title,omitempty"`
	MergeHeaders         bool   `json:"mergeHeaders,omitempty"`
	IncludeFilterContext bool   `json:"includeFilterContext,omitempty"`
}

// InsightSavedBody carries the persisted visualization object of a saved
// insight.
type InsightSavedBody struct {
	VisualizationObject visualization.VisualizationObject `json:"visualizationObject"`
}

// ExportFinishedBody carries the link an export can be downloaded from.
type ExportFinishedBody struct {
	Link string `json:"link"`
}

// AvailableCommandsBody lists the commands the editor accepts in its current
// state.
type AvailableCommandsBody struct {
	AvailableCommands []string `json:"availableCommands"`
}

// IsDrillableItemsCommand returns true when the message is this product's
// drillableItems command.
func IsDrillableItemsCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandDrillableItems)
}

// IsOpenInsightCommand returns true when the message is the openInsight
// command.
func IsOpenInsightCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandOpenInsight)
}

// IsSaveCommand returns true when the message is the saveInsight command.
func IsSaveCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandSave)
}

// IsSaveAsCommand returns true when the message is the saveAsInsight command.
func IsSaveAsCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandSaveAs)
}

// IsExportCommand returns true when the message is the exportInsight command.
func IsExportCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandExport)
}

// IsUndoCommand returns true when the message is the undo command.
func IsUndoCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandUndo)
}

// IsRedoCommand returns true when the message is the redo command.
func IsRedoCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandRedo)
}

// IsClearCommand returns true when the message is the clear command.
func IsClearCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandClear)
}

// IsRequestCancellationCommand returns true when the message is the
// requestCancellation command.
func IsRequestCancellationCommand(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, CommandRequestCancellation)
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

// IsListeningForDrillableItemsEvent returns true when the message is the
// listeningForDrillableItems event.
func IsListeningForDrillableItemsEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventListeningForDrillableItems)
}

// IsNewInsightInitializedEvent returns true when the message is the
// newInsightInitialized event.
func IsNewInsightInitializedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventNewInsightInitialized)
}

// IsInsightOpenedEvent returns true when the message is the insightOpened
// event.
func IsInsightOpenedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventInsightOpened)
}

// IsInsightSavedEvent returns true when the message is the insightSaved
// event.
func IsInsightSavedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventInsightSaved)
}

// IsInsightRenderedEvent returns true when the message is the
// insightRendered event.
func IsInsightRenderedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventInsightRendered)
}

// IsUndoFinishedEvent returns true when the message is the undoFinished
// event.
func IsUndoFinishedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventUndoFinished)
}

// IsRedoFinishedEvent returns true when the message is the redoFinished
// event.
func IsRedoFinishedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventRedoFinished)
}

// IsExportFinishedEvent returns true when the message is the
// exportInsightFinished event.
func IsExportFinishedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventExportFinished)
}

// IsClearFinishedEvent returns true when the message is the clearFinished
// event.
func IsClearFinishedEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventClearFinished)
}

// IsAvailableCommandsEvent returns true when the message is the
// availableCommands event.
func IsAvailableCommandsEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventAvailableCommands)
}

// IsDrillEvent returns true when the message is the drill event.
func IsDrillEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventDrill)
}

// IsPlatformEvent returns true when the message is this product's platform
// event.
func IsPlatformEvent(message interface{}) bool {
	return embedding.IsMessageOf(message, Product, EventPlatform)
}

// NewDrillableItemsCommand builds a drillableItems command envelope.
func NewDrillableItemsCommand(uris, identifiers []string) embedding.MessageEnvelope {
	return embedding.NewCommand(Product, CommandDrillableItems, DrillableItemsBody{
		URIs:        uris,
		Identifiers: identifiers,
	})
}

// NewSaveCommand builds a saveInsight command envelope.
func NewSaveCommand(title string) embedding.MessageEnvelope {
	return embedding.NewCommand(Product, CommandSave, SaveBody{Title: title})
}

// NewExportCommand builds an exportInsight command envelope.
func NewExportCommand(body ExportBody) embedding.MessageEnvelope {
	return embedding.NewCommand(Product, CommandExport, body)
}

// NewSetFilterContextCommand builds a setFilterContext command envelope.
func NewSetFilterContextCommand(filters []embedding.FilterItem) embedding.MessageEnvelope {
	return embedding.NewCommand(Product, CommandSetFilterContext, embedding.FilterContext{Filters: filters})
}
