// Package codec centralizes value encoding for the optional serialization
// hooks (see strutil). Codec selection is a compatibility boundary: bytes
// produced by one codec are only guaranteed to decode with the same one.
package codec

// Codec encodes and decodes values.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when callers do not pick one.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
