package bio

// Typed array readers mirroring writer_arrays.go. Each reads the
// length-mode-dependent count prefix, then decodes exactly that many
// elements (spec.md §9's REDESIGN FLAGS: this is the fixed version of the
// Java original's decodeList, which iterated 0..list.size() on an
// initially empty list and never decoded anything).

func (s *BiStream) ReadByteArray() []int8 {
	n := s.ReadLength()
	if s.err != nil {
		return nil
	}
	out := make([]int8, n)
	for i := range out {
		out[i] = s.ReadInt8()
	}
	return out
}

func (s *BiStream) ReadShortArray() []int16 {
	n := s.ReadLength()
	if s.err != nil {
		return nil
	}
	out := make([]int16, n)
	for i := range out {
		out[i] = s.ReadInt16()
	}
	return out
}

func (s *BiStream) ReadIntArray() []int32 {
	n := s.ReadLength()
	if s.err != nil {
		return nil
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = s.ReadInt32()
	}
	return out
}

func (s *BiStream) ReadLongArray() []int64 {
	n := s.ReadLength()
	if s.err != nil {
		return nil
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = s.ReadInt64()
	}
	return out
}

func (s *BiStream) ReadFloatArray() []float32 {
	n := s.ReadLength()
	if s.err != nil {
		return nil
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = s.ReadFloat32()
	}
	return out
}

func (s *BiStream) ReadDoubleArray() []float64 {
	n := s.ReadLength()
	if s.err != nil {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.ReadFloat64()
	}
	return out
}

func (s *BiStream) ReadBooleanArray() []bool {
	n := s.ReadLength()
	if s.err != nil {
		return nil
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = s.ReadBool()
	}
	return out
}

func (s *BiStream) ReadAsciiStringArray() []string {
	n := s.ReadLength()
	if s.err != nil {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = s.ReadAsciiString()
	}
	return out
}

func (s *BiStream) ReadUtfStringArray() []string {
	n := s.ReadLength()
	if s.err != nil {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = s.ReadUtfString()
	}
	return out
}
