//go:build test

package bio

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PropertiesTestSuite struct {
	suite.Suite
	c *Codec
}

func (s *PropertiesTestSuite) SetupTest() {
	s.c = NewCodec()
}

// TestS5PropertiesEscape is spec.md §8 S5: a code==0/version==0 record
// with two keys round-trips without ever consulting a dictionary.
func (s *PropertiesTestSuite) TestS5PropertiesEscape() {
	rec := NewRecord(0, 0, 0)
	rec.Put("a", int32(7))
	rec.Put("b", "x")

	blob, err := s.c.encodeProperties(rec)
	s.Require().NoError(err)
	s.Assert().Equal(byte(0), blob[0])
	s.Assert().Equal([]byte{0, 0}, blob[1:3])
	s.Assert().Equal([]byte{0, 0}, blob[3:5])

	got, err := s.c.decodeProperties(blob)
	s.Require().NoError(err)
	v, ok := got.Get("a")
	s.Require().True(ok)
	s.Assert().EqualValues(7, v)
	v, ok = got.Get("b")
	s.Require().True(ok)
	s.Assert().Equal("x", v)
}

func (s *PropertiesTestSuite) TestNestedPropertiesRoundTripsThroughRecordCodec() {
	dict := NewDictionary(21)
	inner := NewTag(1, "meta", TypeProperties)
	obj := NewObj(21, 1, 1, "Container").AddTag(inner)
	dict.AddObj(obj)
	Register(dict)
	s.T().Cleanup(Reset)

	meta := NewRecord(0, 0, 0)
	meta.Put("k", "v")

	rec := instantiate(obj, 1, 1)
	rec.Put("meta", meta)

	frame, err := s.c.Encode(rec)
	s.Require().NoError(err)

	decoded, err := s.c.Decode(frame)
	s.Require().NoError(err)
	got := decoded.(Record)
	nested, ok := got.Get("meta")
	s.Require().True(ok)
	nestedRec := nested.(Record)
	v, ok := nestedRec.Get("k")
	s.Require().True(ok)
	s.Assert().Equal("v", v)
}

func (s *PropertiesTestSuite) TestInferBioTypeRejectsUnknownGoType() {
	_, _, err := inferBioType(map[string]int{"x": 1})
	s.Assert().Error(err)
}

func (s *PropertiesTestSuite) TestArrayValuesRoundTrip() {
	rec := NewRecord(0, 0, 0)
	rec.Put("xs", []int32{1, 2, 3})
	rec.Put("names", []string{"a", "b"})

	blob, err := s.c.encodeProperties(rec)
	s.Require().NoError(err)
	got, err := s.c.decodeProperties(blob)
	s.Require().NoError(err)

	xs, ok := got.Get("xs")
	s.Require().True(ok)
	s.Assert().Equal([]int32{1, 2, 3}, xs)

	names, ok := got.Get("names")
	s.Require().True(ok)
	s.Assert().Equal([]string{"a", "b"}, names)
}

func TestPropertiesSuite(t *testing.T) {
	suite.Run(t, new(PropertiesTestSuite))
}
