package embedding

// Error codes carried by a commandFailed event. These are wire values.
const (
	InvalidCommand  = "error:invalidCommand"
	InvalidArgument = "error:invalidArgument"
	InvalidState    = "error:invalidState"
	RuntimeError    = "error:runtime"
)

// CommandFailedName is the event name failures of any command are reported
// under.
const CommandFailedName = "commandFailed"

// CommandFailedBody is the payload of a commandFailed event.
type CommandFailedBody struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// IsCommandFailed returns true when the message reports a command failure of
// the given product.
func IsCommandFailed(message interface{}, product string) bool {
	return IsMessageOf(message, product, CommandFailedName)
}

// NewCommandFailedEvent builds a commandFailed event echoing the failing
// command's correlation id.
func NewCommandFailedEvent(product, errorCode, errorMessage, contextID string) MessageEnvelope {
	return NewEvent(product, CommandFailedName, CommandFailedBody{
		ErrorCode:    errorCode,
		ErrorMessage: errorMessage,
	}, contextID)
}
