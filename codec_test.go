//go:build test

package bio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// stubCompressor is a plain run-length encoder used to test the
// compress/keep-raw threshold (spec.md §8 invariant 4 / S4) without
// depending on zstd's actual output size for a given input: long runs
// (the all-zero payload) shrink a lot, short non-repeating payloads
// double in size, so the threshold check exercises both branches
// deterministically.
type stubCompressor struct{}

func (stubCompressor) Compress(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		b := data[i]
		run := 1
		for i+run < len(data) && data[i+run] == b && run < 255 {
			run++
		}
		out = append(out, b, byte(run))
		i += run
	}
	return out, nil
}

func (stubCompressor) Decompress(data []byte, originalSize int) ([]byte, error) {
	out := make([]byte, 0, originalSize)
	for i := 0; i+1 < len(data); i += 2 {
		b, run := data[i], int(data[i+1])
		for j := 0; j < run; j++ {
			out = append(out, b)
		}
	}
	return out, nil
}

type CodecTestSuite struct {
	suite.Suite
}

func (s *CodecTestSuite) TearDownTest() {
	Reset()
}

func propertiesRecordWith(key string, value any) Record {
	rec := NewRecord(0, 0, 0)
	rec.Put(key, value)
	return rec
}

// TestS4CompressionThreshold matches spec.md §8 S4.
func (s *CodecTestSuite) TestS4CompressionThreshold() {
	c := NewCodec(WithCompressed(true), WithCompressor(stubCompressor{}))

	repeated := strings.Repeat("a", 1024)
	rec := propertiesRecordWith("blob", repeated)
	frame, err := c.Encode(rec)
	s.Require().NoError(err)
	s.Assert().NotZero(frame[0] & FlagCompressed)

	decoded, err := c.Decode(frame)
	s.Require().NoError(err)
	got := decoded.(Record)
	v, ok := got.Get("blob")
	s.Require().True(ok)
	s.Assert().Equal(repeated, v)

	tiny := "abcd"
	rec2 := propertiesRecordWith("blob", tiny)
	frame2, err := c.Encode(rec2)
	s.Require().NoError(err)
	s.Assert().Zero(frame2[0] & FlagCompressed)

	decoded2, err := c.Decode(frame2)
	s.Require().NoError(err)
	got2 := decoded2.(Record)
	v2, ok := got2.Get("blob")
	s.Require().True(ok)
	s.Assert().Equal(tiny, v2)
}

func (s *CodecTestSuite) TestArrayFrameRoundTrips() {
	c := NewCodec()
	a := propertiesRecordWith("k", "a")
	b := propertiesRecordWith("k", "b")

	frame, err := c.Encode(RecordArray{a, b})
	s.Require().NoError(err)
	s.Assert().NotZero(frame[0] & FlagArray)
	s.Assert().Zero(frame[0] & FlagList)

	decoded, err := c.Decode(frame)
	s.Require().NoError(err)
	arr, ok := decoded.(RecordArray)
	s.Require().True(ok)
	s.Require().Len(arr, 2)
}

func (s *CodecTestSuite) TestListFrameRoundTrips() {
	c := NewCodec()
	a := propertiesRecordWith("k", "a")

	frame, err := c.Encode(RecordList{a})
	s.Require().NoError(err)
	s.Assert().NotZero(frame[0] & FlagList)

	decoded, err := c.Decode(frame)
	s.Require().NoError(err)
	_, ok := decoded.(RecordList)
	s.Require().True(ok)
}

func (s *CodecTestSuite) TestEncryptedRoundTrip() {
	enc, err := NewAEADEncrypter([]byte("test-secret-key-not-for-prod"))
	s.Require().NoError(err)
	c := NewCodec(WithEncrypted(true), WithEncrypter(enc))

	rec := propertiesRecordWith("secret", "value")
	frame, err := c.Encode(rec)
	s.Require().NoError(err)
	s.Assert().NotZero(frame[0] & FlagEncrypted)

	decoded, err := c.Decode(frame)
	s.Require().NoError(err)
	got := decoded.(Record)
	v, ok := got.Get("secret")
	s.Require().True(ok)
	s.Assert().Equal("value", v)
}

func (s *CodecTestSuite) TestLosslessXMLRoundTrip() {
	c := NewCodec(WithLossless(true))
	rec := propertiesRecordWith("greeting", "hi")

	frame, err := c.Encode(rec)
	s.Require().NoError(err)
	s.Assert().NotZero(frame[0] & FlagXML)

	decoded, err := c.Decode(frame)
	s.Require().NoError(err)
	got := decoded.(Record)
	v, ok := got.Get("greeting")
	s.Require().True(ok)
	s.Assert().Equal("hi", v)
}

func (s *CodecTestSuite) TestEncodeNilFails() {
	c := NewCodec()
	_, err := c.Encode(nil)
	s.Require().ErrorIs(err, ErrNilRecord)
}

func (s *CodecTestSuite) TestDecodeEmptyFails() {
	c := NewCodec()
	_, err := c.Decode(nil)
	s.Require().Error(err)
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}
