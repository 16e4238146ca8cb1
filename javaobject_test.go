//go:build test

package bio

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type greeting struct {
	Text string `cbor:"text"`
}

type JavaObjectTestSuite struct {
	suite.Suite
}

func (s *JavaObjectTestSuite) TearDownTest() {
	Reset()
}

// TestRegisteredTypeRoundTrips matches spec.md §9's opaque-bytes channel:
// once a type id is registered, a TypeJavaObject tag round-trips into the
// concrete Go type instead of a generic map.
func (s *JavaObjectTestSuite) TestRegisteredTypeRoundTrips() {
	oc := NewCBORObjectCodec()
	RegisterObjectType(oc, 7, greeting{})

	dict := NewDictionary(30)
	blobTag := NewTag(1, "blob", TypeJavaObject).WithObjectTypeID(7)
	obj := NewObj(30, 1, 1, "Envelope").AddTag(blobTag)
	dict.AddObj(obj)
	Register(dict)

	c := NewCodec(WithObjectCodec(oc))
	rec := instantiate(obj, 1, 1)
	rec.Put("blob", greeting{Text: "hi"})

	frame, err := c.Encode(rec)
	s.Require().NoError(err)

	decoded, err := c.Decode(frame)
	s.Require().NoError(err)
	got := decoded.(Record)
	v, ok := got.Get("blob")
	s.Require().True(ok)
	s.Assert().Equal(greeting{Text: "hi"}, v)
}

// TestUnregisteredTypeRefused matches spec.md §9: decode from an
// unregistered type id is refused, not guessed at, so a JavaObject blob
// from a foreign producer never surfaces as a mis-typed generic value.
func (s *JavaObjectTestSuite) TestUnregisteredTypeRefused() {
	oc := NewCBORObjectCodec()

	blob, err := oc.Marshal(greeting{Text: "hi"})
	s.Require().NoError(err)

	_, err = oc.Unmarshal(blob, 9)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, ErrUnregisteredObjectCodec)
}

func TestJavaObjectSuite(t *testing.T) {
	suite.Run(t, new(JavaObjectTestSuite))
}
