//go:build test

package bio

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoStreamTestSuite struct {
	suite.Suite
	s *BoStream
}

func (s *BoStreamTestSuite) SetupTest() {
	s.s = NewBoStream()
}

func (s *BoStreamTestSuite) TestPrimitives() {
	s.s.WriteRawByte(0xAA)
	s.s.WriteUint16(0xBBCC)
	s.s.WriteUint32(0xDDEEFF11)
	s.s.WriteInt8(-1)
	s.s.WriteInt16(-2)
	s.s.WriteInt32(-3)
	s.s.WriteInt64(-4)
	s.s.WriteFloat32(1.5)
	s.s.WriteFloat64(2.5)
	s.s.WriteBool(true)
	s.s.WriteBool(false)

	got := s.s.Bytes()
	s.Require().Equal(1+2+4+1+2+4+8+4+8+1+1, len(got))
	s.Assert().Equal(byte(0xAA), got[0])
	s.Assert().Equal([]byte{0xBB, 0xCC}, got[1:3])
	s.Assert().Equal([]byte{0xDD, 0xEE, 0xFF, 0x11}, got[3:7])
}

func (s *BoStreamTestSuite) TestLengthModeDefaultsToU16() {
	s.Assert().False(s.s.LengthAsInt())
	s.s.WriteLength(300)
	s.Assert().Equal([]byte{0x01, 0x2C}, s.s.Bytes())
}

func (s *BoStreamTestSuite) TestLengthModeU32WhenLarge() {
	s.s.SetLengthAsInt(true)
	s.s.WriteLength(300)
	s.Assert().Equal([]byte{0x00, 0x00, 0x01, 0x2C}, s.s.Bytes())
}

func (s *BoStreamTestSuite) TestWriteBioBytesPrefixesLength() {
	s.s.WriteBioBytes([]byte("hi"))
	s.Assert().Equal([]byte{0x00, 0x02, 'h', 'i'}, s.s.Bytes())
}

func (s *BoStreamTestSuite) TestWriteTagHeaderIgnoresLengthMode() {
	// spec.md §6.2: tagCode is always u16, regardless of the record's
	// length mode (see SPEC_FULL.md's REDESIGN FLAGS).
	s.s.SetLengthAsInt(true)
	tag := NewTag(7, "x", TypeInteger)
	s.s.WriteTagHeader(tag, ContainerArray)
	s.Assert().Equal([]byte{byte(TypeInteger), byte(ContainerArray), 0x00, 0x07}, s.s.Bytes())
}

func (s *BoStreamTestSuite) TestArrayWriters() {
	s.s.WriteIntArray([]int32{1, 2, 3})
	expected := []byte{0x00, 0x03, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3}
	s.Assert().Equal(expected, s.s.Bytes())
}

func TestBoStreamSuite(t *testing.T) {
	suite.Run(t, new(BoStreamTestSuite))
}
