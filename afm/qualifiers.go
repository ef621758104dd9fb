package afm

import "github.com/pbenes/gooddata-typings/typeguard"

// ObjQualifier references a catalog object either by its URI or by its
// identifier. Exactly one of the two fields is expected to be set.
type ObjQualifier struct {
	URI        string `json:"uri,omitempty"`
	Identifier string `json:"identifier,omitempty"`
}

// LocalIdentifierQualifier references an attribute or measure declared
// elsewhere in the same execution by its caller-assigned local identifier.
type LocalIdentifierQualifier struct {
	LocalIdentifier string `json:"localIdentifier"`
}

// Qualifier references either a catalog object (by uri or identifier) or a
// locally declared item (by local identifier).
type Qualifier struct {
	URI             string `json:"uri,omitempty"`
	Identifier      string `json:"identifier,omitempty"`
	LocalIdentifier string `json:"localIdentifier,omitempty"`
}

// IsObjectURIQualifier returns true when the value is a qualifier carrying a uri.
func IsObjectURIQualifier(value interface{}) bool {
	switch q := value.(type) {
	case ObjQualifier:
		return q.URI != ""
	case *ObjQualifier:
		return q != nil && q.URI != ""
	case Qualifier:
		return q.URI != ""
	case *Qualifier:
		return q != nil && q.URI != ""
	default:
		return typeguard.HasField(value, "uri")
	}
}

// IsObjIdentifierQualifier returns true when the value is a qualifier carrying
// an identifier.
func IsObjIdentifierQualifier(value interface{}) bool {
	switch q := value.(type) {
	case ObjQualifier:
		return q.Identifier != ""
	case *ObjQualifier:
		return q != nil && q.Identifier != ""
	case Qualifier:
		return q.Identifier != ""
	case *Qualifier:
		return q != nil && q.Identifier != ""
	default:
		return typeguard.HasField(value, "identifier")
	}
}

// IsLocalIdentifierQualifier returns true when the value is a qualifier
// referencing a locally declared item.
func IsLocalIdentifierQualifier(value interface{}) bool {
	switch q := value.(type) {
	case LocalIdentifierQualifier:
		return q.LocalIdentifier != ""
	case *LocalIdentifierQualifier:
		return q != nil && q.LocalIdentifier != ""
	case Qualifier:
		return q.LocalIdentifier != ""
	case *Qualifier:
		return q != nil && q.LocalIdentifier != ""
	default:
		return typeguard.HasField(value, "localIdentifier")
	}
}
