package bio

import (
	"encoding/binary"
	"math"
)

// BiStream is the input half of the bio wire codec: a cursor over an
// in-memory byte slice that latches its first error, after which every
// further read becomes a no-op returning the zero value (spec.md §4.1).
// Grounded on the teacher's Reader/BytesReader (reader.go,
// reader_bytes.go) and their "first error wins, subsequent reads are
// no-ops" discipline, simplified from an io.Reader-wrapping buffered
// reader to a flat slice cursor since a frame is always decoded from a
// single already-materialized buffer (spec.md §1 Non-goals).
type BiStream struct {
	buf         []byte
	pos         int
	lengthAsInt bool
	err         error
}

// NewBiStream wraps b for reading, starting in 2-byte length mode.
func NewBiStream(b []byte) *BiStream {
	return &BiStream{buf: b}
}

// Err returns the first error encountered, or nil.
func (s *BiStream) Err() error { return s.err }

// SetErr latches err if none has been latched yet. Exposed so callers
// composing BiStream with higher-level validation (unknown tag codes,
// type mismatches) can fail the stream without a separate error channel.
func (s *BiStream) SetErr(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// LengthAsInt reports the current length-prefix width mode.
func (s *BiStream) LengthAsInt() bool { return s.lengthAsInt }

// SetLengthAsInt switches between u16 (false) and u32 (true) length
// prefixes for ReadLength/ReadBioBytes.
func (s *BiStream) SetLengthAsInt(v bool) { s.lengthAsInt = v }

// Available returns the number of unread bytes remaining.
func (s *BiStream) Available() int {
	if s.pos >= len(s.buf) {
		return 0
	}
	return len(s.buf) - s.pos
}

// readN returns the next n bytes and advances the cursor, or latches
// ErrTruncated and returns nil if fewer than n bytes remain.
func (s *BiStream) readN(n int) []byte {
	if s.err != nil {
		return nil
	}
	if n < 0 || s.pos+n > len(s.buf) {
		s.err = ErrTruncated
		return nil
	}
	b := s.buf[s.pos : s.pos+n]
	s.pos += n
	return b
}

// ReadRawByte reads a single byte, or 0 if the stream has failed.
func (s *BiStream) ReadRawByte() byte {
	b := s.readN(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// ReadRawBytes reads exactly n raw bytes with no length prefix.
func (s *BiStream) ReadRawBytes(n int) []byte {
	b := s.readN(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// ReadUint16 reads a fixed 2-byte big-endian value.
func (s *BiStream) ReadUint16() uint16 {
	b := s.readN(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// ReadUint32 reads a fixed 4-byte big-endian value.
func (s *BiStream) ReadUint32() uint32 {
	b := s.readN(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// ReadLength reads a length prefix using the stream's current length
// mode: u16 if !LengthAsInt(), u32 otherwise (spec.md §4.1).
func (s *BiStream) ReadLength() int {
	if s.lengthAsInt {
		return int(s.ReadUint32())
	}
	return int(s.ReadUint16())
}

// ReadBioBytes reads [length][bytes] using the stream's current length
// mode (spec.md §4.1's readBioBytes).
func (s *BiStream) ReadBioBytes() []byte {
	n := s.ReadLength()
	return s.ReadRawBytes(n)
}

// ReadTagHeader reads one tag entry header: [type][container][tagCode]
// (spec.md §4.1, §6.2). Tag codes are always read as u16 big-endian; see
// writer.go's WriteTagHeader.
func (s *BiStream) ReadTagHeader() (BioType, Container, uint16) {
	typ := BioType(s.ReadRawByte())
	container := Container(s.ReadRawByte())
	code := s.ReadUint16()
	return typ, container, code
}

// --- scalar primitive readers ---

func (s *BiStream) ReadInt8() int8 { return int8(s.ReadRawByte()) }

func (s *BiStream) ReadInt16() int16 { return int16(s.ReadUint16()) }

func (s *BiStream) ReadInt32() int32 { return int32(s.ReadUint32()) }

func (s *BiStream) ReadInt64() int64 {
	b := s.readN(8)
	if b == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b))
}

func (s *BiStream) ReadFloat32() float32 { return math.Float32frombits(s.ReadUint32()) }

func (s *BiStream) ReadFloat64() float64 {
	b := s.readN(8)
	if b == nil {
		return 0
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

func (s *BiStream) ReadBool() bool { return s.ReadRawByte() != 0 }

// ReadAsciiString reads a length-prefixed byte sequence as a string
// (spec.md §3 "String (ASCII)"). No ASCII validation is performed on
// decode either, mirroring the encoder.
func (s *BiStream) ReadAsciiString() string { return string(s.ReadBioBytes()) }

// ReadUtfString reads a length-prefixed UTF-8 byte sequence as a string
// (spec.md §3 "UtfString").
func (s *BiStream) ReadUtfString() string { return string(s.ReadBioBytes()) }
