// Package embedding describes the cross-window messaging protocol between a
// host page and an embedded analytics product. Every message travels in a
// fixed three-level envelope: an outer gdc wrapper, the product the message
// belongs to, and the event carrying the name, an optional payload and an
// optional correlation id. The product subpackages declare the closed
// command and event vocabularies.
package embedding

import (
	uuid "github.com/satori/go.uuid"

	"github.com/pbenes/gooddata-typings/typeguard"
)

// Product names messages travel under. These are wire values.
const (
	ProductAnalyticalDesigner = "analyticalDesigner"
	ProductKPIDashboard       = "dashboard"
)

// MessageEnvelope is the outer wrapper of every protocol message.
type MessageEnvelope struct {
	GDC Message `json:"gdc"`
}

// Message pairs the owning product with the event itself.
type Message struct {
	Product string `json:"product"`
	Event   Event  `json:"event"`
}

// Event carries the message name, its payload and the correlation id a host
// uses to match responses to the commands it sent.
type Event struct {
	Name      string      `json:"name"`
	Data      interface{} `json:"data,omitempty"`
	ContextID string      `json:"contextId,omitempty"`
}

// EventType extracts the event name routing a message to its handler. It is
// total: any input is accepted, including nil and partially nested garbage,
// and anything short of a full envelope with a string name yields "".
func EventType(message interface{}) string {
	switch m := message.(type) {
	case MessageEnvelope:
		return m.GDC.Event.Name
	case *MessageEnvelope:
		if m == nil {
			return ""
		}
		return m.GDC.Event.Name
	default:
		gdc := typeguard.Field(message, "gdc")
		event := typeguard.Field(gdc, "event")
		return typeguard.StringField(event, "name")
	}
}

// ProductOf extracts the product a message belongs to, with the same total
// fallback behavior as EventType.
func ProductOf(message interface{}) string {
	switch m := message.(type) {
	case MessageEnvelope:
		return m.GDC.Product
	case *MessageEnvelope:
		if m == nil {
			return ""
		}
		return m.GDC.Product
	default:
		return typeguard.StringField(typeguard.Field(message, "gdc"), "product")
	}
}

// IsMessageOf returns true when the message belongs to the product and
// carries the event name. Command and event names are unique within a
// product but not across products, so both checks matter.
func IsMessageOf(message interface{}, product, name string) bool {
	if product == "" || name == "" {
		return false
	}
	return ProductOf(message) == product && EventType(message) == name
}

// NewCommand wraps a command payload in a full envelope with a fresh
// correlation id.
func NewCommand(product, name string, data interface{}) MessageEnvelope {
	return MessageEnvelope{
		GDC: Message{
			Product: product,
			Event: Event{
				Name:      name,
				Data:      data,
				ContextID: uuid.NewV4().String(),
			},
		},
	}
}

// NewEvent wraps an event payload in a full envelope, echoing the
// correlation id of the command it responds to. An empty contextId is legal
// for unsolicited events.
func NewEvent(product, name string, data interface{}, contextID string) MessageEnvelope {
	return MessageEnvelope{
		GDC: Message{
			Product: product,
			Event: Event{
				Name:      name,
				Data:      data,
				ContextID: contextID,
			},
		},
	}
}
