//go:build test

package bio

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RecordCodecTestSuite struct {
	suite.Suite
	c *Codec
}

func (s *RecordCodecTestSuite) SetupTest() {
	s.c = NewCodec()
}

func (s *RecordCodecTestSuite) TearDownTest() {
	Reset()
}

// TestS1MinimalRecord matches spec.md §8 S1 byte-for-byte: dictionary 1,
// object code=10/version=1, one scalar UtfString tag.
func (s *RecordCodecTestSuite) TestS1MinimalRecord() {
	dict := NewDictionary(1)
	greetingTag := NewTag(5, "greeting", TypeUtfString)
	obj := NewObj(1, 10, 1, "Greeting").AddTag(greetingTag)
	dict.AddObj(obj)
	Register(dict)

	rec := instantiate(obj, 10, 1)
	rec.Put("greeting", "hi")

	frame, err := s.c.Encode(rec)
	s.Require().NoError(err)

	expected := []byte{
		0x00,             // flag
		0x01,             // dictionary
		0x00, 0x0A,       // code=10
		0x00, 0x01,       // version=1
		byte(TypeUtfString), byte(ContainerScalar),
		0x00, 0x05, // tagCode=5
		0x00, 0x02, 'h', 'i', // len-prefixed "hi"
	}
	s.Assert().Equal(expected, frame)

	decoded, err := s.c.Decode(frame)
	s.Require().NoError(err)
	got := decoded.(Record)
	v, ok := got.Get("greeting")
	s.Require().True(ok)
	s.Assert().Equal("hi", v)
}

// TestS2ArrayOfInts matches spec.md §8 S2: xs:Integer[] = [1,2,3].
func (s *RecordCodecTestSuite) TestS2ArrayOfInts() {
	dict := NewDictionary(2)
	xsTag := NewTag(1, "xs", TypeInteger).WithArray()
	obj := NewObj(2, 1, 1, "Ints").AddTag(xsTag)
	dict.AddObj(obj)
	Register(dict)

	rec := instantiate(obj, 1, 1)
	rec.Put("xs", []int32{1, 2, 3})

	frame, err := s.c.Encode(rec)
	s.Require().NoError(err)

	// header(5) + flag(1) + tag header(4) + count(2) + 3*4 bytes payload
	s.Assert().Len(frame, 1+5+4+2+12)

	decoded, err := s.c.Decode(frame)
	s.Require().NoError(err)
	got := decoded.(Record)
	v, ok := got.Get("xs")
	s.Require().True(ok)
	s.Assert().Equal([]int32{1, 2, 3}, v)
}

// TestS3NestedRecordInList matches spec.md §8 S3: items:BioObject[]
// (list) containing two children decodes back as a RecordList of length 2.
func (s *RecordCodecTestSuite) TestS3NestedRecordInList() {
	dict := NewDictionary(3)
	child := NewObj(3, 2, 1, "Child").AddTag(NewTag(1, "n", TypeInteger))
	itemsTag := NewTag(9, "items", TypeBioObject).WithList()
	parent := NewObj(3, 1, 1, "Parent").AddTag(itemsTag)
	dict.AddObj(parent).AddObj(child)
	Register(dict)

	c1 := instantiate(child, 2, 1)
	c1.Put("n", int32(1))
	c2 := instantiate(child, 2, 1)
	c2.Put("n", int32(2))

	rec := instantiate(parent, 1, 1)
	rec.Put("items", RecordList{c1, c2})

	frame, err := s.c.Encode(rec)
	s.Require().NoError(err)

	decoded, err := s.c.Decode(frame)
	s.Require().NoError(err)
	got := decoded.(Record)
	items, ok := got.Get("items")
	s.Require().True(ok)

	list, ok := items.(RecordList)
	s.Require().True(ok, "expected a RecordList, got %T", items)
	s.Require().Len(list, 2)
	n1, _ := list[0].Get("n")
	n2, _ := list[1].Get("n")
	s.Assert().EqualValues(1, n1)
	s.Assert().EqualValues(2, n2)
}

// TestS6EnumByOrdinal matches spec.md §8 S6.
func (s *RecordCodecTestSuite) TestS6EnumByOrdinal() {
	dict := NewDictionary(6)
	statusEnum := NewEnumObj(6, 1, "Status")
	statusEnum.Register(fakeEnumVariant(3))
	dict.AddEnum(statusEnum)
	statusTag := NewTag(1, "status", TypeBioEnum).WithEnum(statusEnum)
	obj := NewObj(6, 1, 1, "Job").AddTag(statusTag)
	dict.AddObj(obj)
	Register(dict)

	rec := instantiate(obj, 1, 1)
	rec.Put("status", fakeEnumVariant(3))

	frame, err := s.c.Encode(rec)
	s.Require().NoError(err)

	// header(5) + flag(1) + [type][container][tagCode] + ordinal(4)
	tagHeaderOffset := 1 + 5
	s.Assert().Equal(byte(TypeBioEnum), frame[tagHeaderOffset])
	s.Assert().Equal(byte(ContainerScalar), frame[tagHeaderOffset+1])
	ordinalOffset := tagHeaderOffset + 4
	s.Assert().Equal([]byte{0, 0, 0, 3}, frame[ordinalOffset:ordinalOffset+4])

	decoded, err := s.c.Decode(frame)
	s.Require().NoError(err)
	got := decoded.(Record)
	v, ok := got.Get("status")
	s.Require().True(ok)
	variant, ok := v.(EnumVariant)
	s.Require().True(ok)
	s.Assert().Equal(3, variant.Ordinal())
}

// TestStrictModeFailsOnUnknownDictionary is spec.md §8 invariant 5.
func (s *RecordCodecTestSuite) TestStrictModeFailsOnUnknownDictionary() {
	strict := NewCodec(WithValidated(true))
	rec := NewRecord(250, 1, 1)
	_, err := strict.Encode(rec)
	s.Require().Error(err)
	var perr *ParserError
	s.Require().ErrorAs(err, &perr)
	s.Assert().Equal(ErrUnknownDictionary, perr.Kind)
}

// TestLenientModeOmitsUnknownDictionary is the other half of invariant 5.
func (s *RecordCodecTestSuite) TestLenientModeOmitsUnknownDictionary() {
	rec := NewRecord(250, 1, 1)
	frame, err := s.c.Encode(rec)
	s.Require().NoError(err)
	// The whole element is omitted: just the flag byte remains.
	s.Assert().Equal([]byte{0x00}, frame)
}

// TestUnknownTagSkip is spec.md §8 invariant 6: a blob produced by a
// newer schema decodes under an older schema without error, dropping the
// extra tag.
func (s *RecordCodecTestSuite) TestUnknownTagSkip() {
	dict := NewDictionary(7)
	obj := NewObj(7, 1, 1, "V1").AddTag(NewTag(1, "keep", TypeInteger))
	dict.AddObj(obj)
	Register(dict)

	// Simulate a newer writer that also knew about tag code 2.
	s2 := NewBoStream()
	s2.WriteRawByte(7)
	s2.WriteUint16(1)
	s2.WriteUint16(1)
	s2.WriteTagHeader(NewTag(1, "keep", TypeInteger), ContainerScalar)
	s2.WriteInt32(42)
	s2.WriteTagHeader(NewTag(2, "future", TypeUtfString), ContainerScalar)
	s2.WriteUtfString("unseen")

	rec, err := s.c.decodeBio(s2.Bytes())
	s.Require().NoError(err)
	v, ok := rec.Get("keep")
	s.Require().True(ok)
	s.Assert().EqualValues(42, v)
	_, ok = rec.Get("future")
	s.Assert().False(ok)
}

// TestNestedBioObjectOmitsWholeTagOnUnknownDictionary is spec.md §4.3's
// "if the value is a nested record whose dictionary is unknown, skip".
func (s *RecordCodecTestSuite) TestNestedBioObjectOmitsWholeTagOnUnknownDictionary() {
	dict := NewDictionary(8)
	childTag := NewTag(1, "child", TypeBioObject)
	obj := NewObj(8, 1, 1, "Parent").AddTag(childTag)
	dict.AddObj(obj)
	Register(dict)

	rec := instantiate(obj, 1, 1)
	rec.Put("child", NewRecord(250, 1, 1))

	frame, err := s.c.Encode(rec)
	s.Require().NoError(err)

	decoded, err := s.c.Decode(frame)
	s.Require().NoError(err)
	got := decoded.(Record)
	_, ok := got.Get("child")
	s.Assert().False(ok)
}

func TestRecordCodecSuite(t *testing.T) {
	suite.Run(t, new(RecordCodecTestSuite))
}
