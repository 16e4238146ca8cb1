//go:build test

package bio

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DictionaryTestSuite struct {
	suite.Suite
}

func (s *DictionaryTestSuite) TearDownTest() {
	Reset()
}

func (s *DictionaryTestSuite) TestRegisterAndLookup() {
	d := NewDictionary(9)
	obj := NewObj(9, 10, 1, "Greeting").AddTag(NewTag(1, "greeting", TypeUtfString))
	d.AddObj(obj)
	Register(d)

	got, ok := Dictionary(9)
	s.Require().True(ok)
	s.Assert().Same(d, got)

	byCode := got.ObjByCode(10)
	s.Require().NotNil(byCode)
	s.Assert().Equal("Greeting", byCode.Name)

	byName := got.ObjByName("Greeting")
	s.Assert().Same(byCode, byName)

	tag := byCode.TagByCode(1)
	s.Require().NotNil(tag)
	s.Assert().Equal("greeting", tag.Name)
	s.Assert().Same(tag, byCode.TagByName("greeting"))
}

func (s *DictionaryTestSuite) TestUnregisteredLookupMisses() {
	_, ok := Dictionary(200)
	s.Assert().False(ok)
}

func (s *DictionaryTestSuite) TestSuperTagFallback() {
	d := NewDictionary(11)
	d.AddSuperTag(NewTag(99, "createdAt", TypeLong))
	obj := NewObj(11, 1, 1, "Widget")
	d.AddObj(obj)
	Register(d)

	s.Assert().Nil(obj.TagByCode(99))
	got, _ := Dictionary(11)
	tag := got.SuperTagByCode(99)
	s.Require().NotNil(tag)
	s.Assert().Equal("createdAt", tag.Name)
	s.Assert().Same(tag, got.SuperTagByName("createdAt"))
}

func (s *DictionaryTestSuite) TestResetDiscardsRegistry() {
	Register(NewDictionary(12))
	_, ok := Dictionary(12)
	s.Require().True(ok)

	Reset()
	_, ok = Dictionary(12)
	s.Assert().False(ok)
}

func (s *DictionaryTestSuite) TestEnumRegistrationAndOrdinalLookup() {
	d := NewDictionary(13)
	statusEnum := NewEnumObj(13, 1, "Status")
	statusEnum.Register(fakeEnumVariant(0)).Register(fakeEnumVariant(3))
	d.AddEnum(statusEnum)
	Register(d)

	got, _ := Dictionary(13)
	enumObj := got.EnumObj(1)
	s.Require().NotNil(enumObj)
	s.Assert().EqualValues(3, enumObj.BioEnum(3).Ordinal())
	s.Assert().Nil(enumObj.BioEnum(99))
}

type fakeEnumVariant int

func (f fakeEnumVariant) Ordinal() int { return int(f) }

func TestDictionarySuite(t *testing.T) {
	suite.Run(t, new(DictionaryTestSuite))
}
