package bio

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// XMLBridge is the collaborator interface for the lossless lane
// (spec.md §4.5, §6.5 "toXml(record) -> string, fromXml(bytes) ->
// record"). Selected when a Codec is built with WithLossless(true).
type XMLBridge interface {
	ToXML(rec Record) ([]byte, error)
	FromXML(data []byte) (Record, error)
}

// xmlBridge is the default XMLBridge. No XML library appears anywhere in
// the retrieval pack, so this is one of the few components built
// directly on the standard library (see DESIGN.md's "xml.go" entry for
// the justification) rather than a third-party dependency.
type xmlBridge struct{}

// NewXMLBridge returns the default XMLBridge.
func NewXMLBridge() XMLBridge { return xmlBridge{} }

type xmlField struct {
	XMLName   xml.Name `xml:"field"`
	Name      string   `xml:"name,attr"`
	Type      string   `xml:"type,attr"`
	Container string   `xml:"container,attr,omitempty"`
	Value     string   `xml:",chardata"`
}

type xmlRecord struct {
	XMLName    xml.Name `xml:"record"`
	Dictionary uint8    `xml:"dictionary,attr"`
	Code       uint16   `xml:"code,attr"`
	Version    uint16   `xml:"version,attr"`
	Name       string   `xml:"name,attr,omitempty"`
	Fields     []xmlField `xml:"field"`
}

func (xmlBridge) ToXML(rec Record) ([]byte, error) {
	doc := xmlRecord{
		Dictionary: rec.BioDictionary(),
		Code:       rec.BioCode(),
		Version:    rec.BioVersion(),
		Name:       rec.BioName(),
	}
	for _, key := range rec.Keys() {
		val, ok := rec.Get(key)
		if !ok {
			continue
		}
		f, err := marshalXMLField(key, val)
		if err != nil {
			return nil, fmtTagError(ErrUnsupportedType, rec.BioName(), key, "xml encode: %v", err)
		}
		doc.Fields = append(doc.Fields, f)
	}
	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, wrapIO(err)
	}
	return out, nil
}

func (xmlBridge) FromXML(data []byte) (Record, error) {
	var doc xmlRecord
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, wrapIO(err)
	}
	rec := NewRecord(doc.Dictionary, doc.Code, doc.Version)
	rec.SetBioName(doc.Name)
	for _, f := range doc.Fields {
		v, err := unmarshalXMLField(f)
		if err != nil {
			return nil, fmtTagError(ErrUnsupportedType, doc.Name, f.Name, "xml decode: %v", err)
		}
		rec.Put(f.Name, v)
	}
	return rec, nil
}

// marshalXMLField renders one record value as an xmlField, inferring its
// BioType the same way the properties codec does (spec.md §4.4) since
// the lossless lane carries no separate tag schema of its own.
func marshalXMLField(name string, value any) (xmlField, error) {
	typ, container, err := inferBioType(value)
	if err != nil {
		return xmlField{}, err
	}
	f := xmlField{Name: name, Type: typ.String()}
	if container != ContainerScalar {
		f.Container = "array"
	}
	text, err := scalarToText(typ, value, container)
	if err != nil {
		return xmlField{}, err
	}
	f.Value = text
	return f, nil
}

func unmarshalXMLField(f xmlField) (any, error) {
	typ := parseBioTypeName(f.Type)
	if typ == 0 {
		return nil, fmt.Errorf("unknown xml field type %q", f.Type)
	}
	if f.Container == "array" {
		return textToArray(typ, f.Value)
	}
	return textToScalar(typ, f.Value)
}

func parseBioTypeName(name string) BioType {
	for t := TypeByte; t <= TypeProperties; t++ {
		if t.String() == name {
			return t
		}
	}
	return 0
}

// scalarToText renders a value (scalar or array) as XML character data.
// Arrays are comma-joined; strings/opaque blobs are base64-escaped where
// the raw bytes might not be valid XML text.
func scalarToText(typ BioType, value any, container Container) (string, error) {
	if container != ContainerScalar {
		return arrayToText(typ, value)
	}
	switch typ {
	case TypeByte:
		return strconv.FormatInt(int64(value.(int8)), 10), nil
	case TypeShort:
		return strconv.FormatInt(int64(value.(int16)), 10), nil
	case TypeInteger, TypeBioEnum:
		return strconv.FormatInt(int64(value.(int32)), 10), nil
	case TypeLong, TypeTime:
		return strconv.FormatInt(value.(int64), 10), nil
	case TypeFloat:
		return strconv.FormatFloat(float64(value.(float32)), 'g', -1, 32), nil
	case TypeDouble:
		return strconv.FormatFloat(value.(float64), 'g', -1, 64), nil
	case TypeBoolean:
		return strconv.FormatBool(value.(bool)), nil
	case TypeString, TypeUtfString:
		return value.(string), nil
	case TypeJavaObject:
		return base64.StdEncoding.EncodeToString(value.([]byte)), nil
	default:
		return "", fmt.Errorf("bio: type %s has no XML scalar rendering", typ)
	}
}

func arrayToText(typ BioType, value any) (string, error) {
	var parts []string
	switch typ {
	case TypeByte:
		for _, e := range value.([]int8) {
			parts = append(parts, strconv.FormatInt(int64(e), 10))
		}
	case TypeShort:
		for _, e := range value.([]int16) {
			parts = append(parts, strconv.FormatInt(int64(e), 10))
		}
	case TypeInteger:
		for _, e := range value.([]int32) {
			parts = append(parts, strconv.FormatInt(int64(e), 10))
		}
	case TypeLong, TypeTime:
		for _, e := range value.([]int64) {
			parts = append(parts, strconv.FormatInt(e, 10))
		}
	case TypeFloat:
		for _, e := range value.([]float32) {
			parts = append(parts, strconv.FormatFloat(float64(e), 'g', -1, 32))
		}
	case TypeDouble:
		for _, e := range value.([]float64) {
			parts = append(parts, strconv.FormatFloat(e, 'g', -1, 64))
		}
	case TypeBoolean:
		for _, e := range value.([]bool) {
			parts = append(parts, strconv.FormatBool(e))
		}
	case TypeString, TypeUtfString:
		return strings.Join(value.([]string), "\x1f"), nil
	default:
		return "", fmt.Errorf("bio: type %s has no XML array rendering", typ)
	}
	return strings.Join(parts, ","), nil
}

func textToScalar(typ BioType, text string) (any, error) {
	switch typ {
	case TypeByte:
		v, err := strconv.ParseInt(text, 10, 8)
		return int8(v), err
	case TypeShort:
		v, err := strconv.ParseInt(text, 10, 16)
		return int16(v), err
	case TypeInteger, TypeBioEnum:
		v, err := strconv.ParseInt(text, 10, 32)
		return int32(v), err
	case TypeLong, TypeTime:
		return strconv.ParseInt(text, 10, 64)
	case TypeFloat:
		v, err := strconv.ParseFloat(text, 32)
		return float32(v), err
	case TypeDouble:
		return strconv.ParseFloat(text, 64)
	case TypeBoolean:
		return strconv.ParseBool(text)
	case TypeString, TypeUtfString:
		return text, nil
	case TypeJavaObject:
		return base64.StdEncoding.DecodeString(text)
	default:
		return nil, fmt.Errorf("bio: type %s has no XML scalar parsing", typ)
	}
}

func textToArray(typ BioType, text string) (any, error) {
	if typ == TypeString || typ == TypeUtfString {
		if text == "" {
			return []string{}, nil
		}
		return strings.Split(text, "\x1f"), nil
	}
	var parts []string
	if text != "" {
		parts = strings.Split(text, ",")
	}
	switch typ {
	case TypeByte:
		out := make([]int8, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(p, 10, 8)
			if err != nil {
				return nil, err
			}
			out[i] = int8(v)
		}
		return out, nil
	case TypeShort:
		out := make([]int16, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(p, 10, 16)
			if err != nil {
				return nil, err
			}
			out[i] = int16(v)
		}
		return out, nil
	case TypeInteger:
		out := make([]int32, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(p, 10, 32)
			if err != nil {
				return nil, err
			}
			out[i] = int32(v)
		}
		return out, nil
	case TypeLong, TypeTime:
		out := make([]int64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(p, 10, 64)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TypeFloat:
		out := make([]float32, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(p, 32)
			if err != nil {
				return nil, err
			}
			out[i] = float32(v)
		}
		return out, nil
	case TypeDouble:
		out := make([]float64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TypeBoolean:
		out := make([]bool, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseBool(p)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("bio: type %s has no XML array parsing", typ)
	}
}
