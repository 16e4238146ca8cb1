package bio

// Typed array writers for tag payloads whose container is
// ContainerArray/ContainerList (spec.md §4.1: "[count:LenW][element1]...").
// Grounded on the shape of the teacher's generic list[T Codec] (list.go) —
// a homogeneous, length-prefixed run of same-typed elements — but
// specialized per BioType instead of generic over a Codec interface,
// since every bio array element is a fixed-width primitive or a
// length-prefixed string/blob rather than an arbitrary nested codec, and
// carries no alignment padding (spec.md's wire format has none).

func (s *BoStream) WriteByteArray(v []int8) {
	s.WriteLength(len(v))
	for _, e := range v {
		s.WriteInt8(e)
	}
}

func (s *BoStream) WriteShortArray(v []int16) {
	s.WriteLength(len(v))
	for _, e := range v {
		s.WriteInt16(e)
	}
}

func (s *BoStream) WriteIntArray(v []int32) {
	s.WriteLength(len(v))
	for _, e := range v {
		s.WriteInt32(e)
	}
}

func (s *BoStream) WriteLongArray(v []int64) {
	s.WriteLength(len(v))
	for _, e := range v {
		s.WriteInt64(e)
	}
}

func (s *BoStream) WriteFloatArray(v []float32) {
	s.WriteLength(len(v))
	for _, e := range v {
		s.WriteFloat32(e)
	}
}

func (s *BoStream) WriteDoubleArray(v []float64) {
	s.WriteLength(len(v))
	for _, e := range v {
		s.WriteFloat64(e)
	}
}

func (s *BoStream) WriteBooleanArray(v []bool) {
	s.WriteLength(len(v))
	for _, e := range v {
		s.WriteBool(e)
	}
}

func (s *BoStream) WriteAsciiStringArray(v []string) {
	s.WriteLength(len(v))
	for _, e := range v {
		s.WriteAsciiString(e)
	}
}

func (s *BoStream) WriteUtfStringArray(v []string) {
	s.WriteLength(len(v))
	for _, e := range v {
		s.WriteUtfString(e)
	}
}
