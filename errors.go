package bio

import (
	"errors"
	"fmt"
)

// ErrKind classifies a ParserError. See spec.md §7.
type ErrKind int

const (
	// ErrUnknownDictionary means the record's dictionary id has no
	// registered BioDictionary. Fatal only in Validated mode.
	ErrUnknownDictionary ErrKind = iota
	// ErrUnknownObject means the record's (dictionary, code) has no
	// registered BioObj. Fatal only in Validated mode.
	ErrUnknownObject
	// ErrTypeMismatch means a tag's declared container (array/list/scalar)
	// does not match the value handed to the encoder. Always fatal.
	ErrTypeMismatch
	// ErrUnsupportedType means a (BioType, container) pair has no wire
	// encoding, e.g. an array of Properties. Always fatal.
	ErrUnsupportedType
	// ErrIO wraps a failure from the underlying buffer, compressor,
	// encrypter, or object codec.
	ErrIO
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnknownDictionary:
		return "unknown dictionary"
	case ErrUnknownObject:
		return "unknown object"
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrUnsupportedType:
		return "unsupported type"
	case ErrIO:
		return "i/o failure"
	default:
		return "unknown"
	}
}

// ParserError is the single error taxonomy the codec surfaces (spec.md
// §7). It carries the tag/object context the Java original attached when
// rethrowing ("... for tag " + key + " value " + value + " object " +
// object.getBioClass().getName()).
type ParserError struct {
	Kind   ErrKind
	Tag    string
	Object string
	Cause  error
}

func (e *ParserError) Error() string {
	msg := "bio: " + e.Kind.String()
	if e.Object != "" {
		msg += " object=" + e.Object
	}
	if e.Tag != "" {
		msg += " tag=" + e.Tag
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParserError) Unwrap() error { return e.Cause }

// newParserError builds a ParserError, optionally naming the tag/object it
// occurred against.
func newParserError(kind ErrKind, object, tag string, cause error) *ParserError {
	return &ParserError{Kind: kind, Object: object, Tag: tag, Cause: cause}
}

// Sentinel errors for conditions that don't need per-call context.
var (
	// ErrNilRecord indicates Encode was called with a nil record.
	ErrNilRecord = errors.New("bio: nothing to encode")

	// ErrNotSequence indicates a tag declared array/list but the value
	// handed to the encoder was neither a slice.
	ErrNotSequence = errors.New("bio: value is not a sequence")

	// ErrUnregisteredObjectCodec indicates a JavaObject/opaque tag has no
	// ObjectCodec registered for its type id. Per spec.md §9, decoding an
	// opaque blob from an unregistered type id is refused rather than
	// guessed at.
	ErrUnregisteredObjectCodec = errors.New("bio: no object codec registered for type id")

	// ErrTruncated indicates the buffer ended before an expected field
	// could be fully read.
	ErrTruncated = errors.New("bio: truncated data")
)

// wrapIO wraps an I/O-ish failure (compression, encryption, buffer
// underrun) as a ParserError, matching spec.md §7's "underlying I/O /
// crypto / compression failure: wrapped as ParserError preserving the
// cause".
func wrapIO(cause error) error {
	if cause == nil {
		return nil
	}
	return newParserError(ErrIO, "", "", cause)
}

func fmtTagError(kind ErrKind, object, tag string, format string, args ...any) error {
	return newParserError(kind, object, tag, fmt.Errorf(format, args...))
}
