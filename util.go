package bio

import "encoding/binary"

// Order is the wire byte order for every multibyte field the codec emits.
// The bio wire format is big-endian throughout (spec.md §4.1).
var Order = binary.BigEndian

// ShortToBytes encodes v as 2 big-endian bytes.
func ShortToBytes(v int16) []byte {
	buf := make([]byte, 2)
	Order.PutUint16(buf, uint16(v))
	return buf
}

// BytesToShort decodes 2 big-endian bytes into an int16.
func BytesToShort(b []byte) int16 {
	return int16(Order.Uint16(b))
}

// IntToBytes encodes v as 4 big-endian bytes.
func IntToBytes(v int32) []byte {
	buf := make([]byte, 4)
	Order.PutUint32(buf, uint32(v))
	return buf
}

// BytesToInt decodes 4 big-endian bytes into an int32.
func BytesToInt(b []byte) int32 {
	return int32(Order.Uint32(b))
}

// LongToBytes encodes v as 8 big-endian bytes.
func LongToBytes(v int64) []byte {
	buf := make([]byte, 8)
	Order.PutUint64(buf, uint64(v))
	return buf
}

// BytesToLong decodes 8 big-endian bytes into an int64.
func BytesToLong(b []byte) int64 {
	return int64(Order.Uint64(b))
}

// Ptr returns a pointer to v, useful for constructing test fixtures inline.
func Ptr[T any](v T) *T { return &v }
