package bio

import (
	"encoding/binary"
	"math"
)

// BoStream is the output half of the bio wire codec: a growable byte
// buffer plus the length-mode bit that decides whether WriteLength/
// WriteBioBytes emit u16 or u32 length prefixes (spec.md §4.1). Grounded
// on the teacher's Writer/BytesWriter (writer.go, writer_bytes.go), but
// simplified to a plain growable slice rather than a bufio-wrapped
// io.Writer: bio frames are built whole in memory before the outer frame
// header (flags, optional compression/encryption) can even be written, so
// there is no streaming destination to buffer toward (spec.md §1
// Non-goals: "no streaming/incremental decode; a frame is decoded
// whole").
type BoStream struct {
	buf         []byte
	lengthAsInt bool
}

// NewBoStream creates an empty output stream in 2-byte length mode.
func NewBoStream() *BoStream {
	return &BoStream{buf: make([]byte, 0, 64)}
}

// LengthAsInt reports the current length-prefix width mode.
func (s *BoStream) LengthAsInt() bool { return s.lengthAsInt }

// SetLengthAsInt switches between u16 (false) and u32 (true) length
// prefixes for WriteLength/WriteBioBytes. A caller writing a nested
// record must save the current mode, set the nested object's own mode,
// write the nested record, then restore the saved mode (spec.md §4.1
// "isLarge only affects the object currently being written").
func (s *BoStream) SetLengthAsInt(v bool) { s.lengthAsInt = v }

// Bytes returns the buffer written so far.
func (s *BoStream) Bytes() []byte { return s.buf }

// Len returns the number of bytes written so far.
func (s *BoStream) Len() int { return len(s.buf) }

func (s *BoStream) grow(n int) []byte {
	at := len(s.buf)
	s.buf = append(s.buf, make([]byte, n)...)
	return s.buf[at : at+n]
}

// WriteRawByte appends a single byte.
func (s *BoStream) WriteRawByte(v byte) { s.buf = append(s.buf, v) }

// WriteRawBytes appends a byte slice verbatim, with no length prefix.
func (s *BoStream) WriteRawBytes(v []byte) { s.buf = append(s.buf, v...) }

// WriteUint16 appends a fixed 2-byte big-endian value. Used for fields
// the length mode never affects: the outer frame's array/list count and
// every record/tag header field (spec.md §6.1, §6.2).
func (s *BoStream) WriteUint16(v uint16) { binary.BigEndian.PutUint16(s.grow(2), v) }

// WriteUint32 appends a fixed 4-byte big-endian value, used for the
// compressed frame's original-length field (spec.md §6.1).
func (s *BoStream) WriteUint32(v uint32) { binary.BigEndian.PutUint32(s.grow(4), v) }

// WriteLength writes n using the stream's current length mode: u16 if
// !LengthAsInt(), u32 otherwise (spec.md §4.1).
func (s *BoStream) WriteLength(n int) {
	if s.lengthAsInt {
		s.WriteUint32(uint32(n))
	} else {
		s.WriteUint16(uint16(n))
	}
}

// WriteBioBytes writes [length][bytes] using the stream's current length
// mode (spec.md §4.1's writeBioBytes).
func (s *BoStream) WriteBioBytes(b []byte) {
	s.WriteLength(len(b))
	s.WriteRawBytes(b)
}

// WriteTagHeader emits one tag entry header: [type][container][tagCode]
// (spec.md §4.1, §6.2). Tag codes are always written as u16 big-endian
// regardless of length mode; see SPEC_FULL.md's REDESIGN FLAGS for why
// the narrower encoding described in §4.1 was rejected. The payload
// itself is written separately by the caller.
func (s *BoStream) WriteTagHeader(tag *BioTag, container Container) {
	s.WriteRawByte(byte(tag.Type))
	s.WriteRawByte(byte(container))
	s.WriteUint16(tag.Code)
}

// --- scalar primitive writers ---

func (s *BoStream) WriteInt8(v int8) { s.WriteRawByte(byte(v)) }

func (s *BoStream) WriteInt16(v int16) { s.WriteUint16(uint16(v)) }

func (s *BoStream) WriteInt32(v int32) { s.WriteUint32(uint32(v)) }

func (s *BoStream) WriteInt64(v int64) { binary.BigEndian.PutUint64(s.grow(8), uint64(v)) }

func (s *BoStream) WriteFloat32(v float32) { s.WriteUint32(math.Float32bits(v)) }

func (s *BoStream) WriteFloat64(v float64) {
	binary.BigEndian.PutUint64(s.grow(8), math.Float64bits(v))
}

func (s *BoStream) WriteBool(v bool) {
	if v {
		s.WriteRawByte(1)
	} else {
		s.WriteRawByte(0)
	}
}

// WriteAsciiString writes a length-prefixed byte sequence (spec.md §3
// "String (ASCII)"). Non-ASCII runes in v are written as their raw UTF-8
// bytes; the codec never validates that a String-typed value is
// ASCII-clean, matching the Java original's plain byte-cast behavior.
func (s *BoStream) WriteAsciiString(v string) { s.WriteBioBytes([]byte(v)) }

// WriteUtfString writes a length-prefixed UTF-8 byte sequence (spec.md §3
// "UtfString").
func (s *BoStream) WriteUtfString(v string) { s.WriteBioBytes([]byte(v)) }
