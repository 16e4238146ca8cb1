package bio

import (
	"reflect"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// ObjectCodec marshals/unmarshals the opaque payload carried by
// TypeJavaObject tags (spec.md §9's "opaque bytes channel" — the Java
// original stores an arbitrary java.io.Serializable blob; Go has no
// equivalent runtime serialization, so the wire payload is delegated to
// a registered codec keyed by BioTag.ObjectTypeID).
type ObjectCodec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, typeID uint16) (any, error)
}

// cborObjectCodec is the default ObjectCodec, grounded on
// bureau-foundation-bureau/lib/codec/cbor.go's deterministic encode mode
// and any-typed decode configuration. Per spec.md §9, Unmarshal refuses
// an unregistered type id rather than guessing at its shape — a
// JavaObject blob from a foreign producer is only decodable once the
// caller has registered the type it expects via RegisterType.
type cborObjectCodec struct {
	mu    sync.RWMutex
	types map[uint16]reflect.Type
}

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	cborEncMode, err = encOptions.EncMode()
	if err != nil {
		panic("bio: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("bio: CBOR decoder initialization failed: " + err.Error())
	}
}

// NewCBORObjectCodec returns the default ObjectCodec: CBOR Core
// Deterministic Encoding, decoding into the Go type registered for each
// type id (or map[string]any/[]any/scalars if none is registered).
func NewCBORObjectCodec() ObjectCodec {
	return &cborObjectCodec{types: make(map[uint16]reflect.Type)}
}

// RegisterType associates typeID with the concrete Go type of sample, so
// Unmarshal can decode directly into that type instead of a generic map.
func (c *cborObjectCodec) RegisterType(typeID uint16, sample any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.types[typeID] = reflect.TypeOf(sample)
}

func (c *cborObjectCodec) Marshal(v any) ([]byte, error) {
	return cborEncMode.Marshal(v)
}

func (c *cborObjectCodec) Unmarshal(data []byte, typeID uint16) (any, error) {
	c.mu.RLock()
	typ, ok := c.types[typeID]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrUnregisteredObjectCodec
	}

	ptr := reflect.New(typ)
	if err := cborDecMode.Unmarshal(data, ptr.Interface()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

// RegisterObjectType is a package-level convenience for the common case
// of a single process-wide default ObjectCodec instance; codecs
// constructed with WithObjectCodec bypass this and register directly on
// their own instance.
func RegisterObjectType(codec ObjectCodec, typeID uint16, sample any) {
	if c, ok := codec.(*cborObjectCodec); ok {
		c.RegisterType(typeID, sample)
	}
}
