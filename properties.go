package bio

import "fmt"

// inferBioType maps a Go value to the BioType/Container pair used to
// encode it in the schema-less properties lane (spec.md §4.4) and in the
// lossless XML lane, both of which identify values without a BioTag to
// consult. This is the Go-side analogue of the Java properties codec's
// instanceof ladder.
func inferBioType(value any) (BioType, Container, error) {
	switch v := value.(type) {
	case int8:
		return TypeByte, ContainerScalar, nil
	case int16:
		return TypeShort, ContainerScalar, nil
	case int32:
		return TypeInteger, ContainerScalar, nil
	case int64:
		return TypeLong, ContainerScalar, nil
	case float32:
		return TypeFloat, ContainerScalar, nil
	case float64:
		return TypeDouble, ContainerScalar, nil
	case bool:
		return TypeBoolean, ContainerScalar, nil
	case string:
		return TypeUtfString, ContainerScalar, nil
	case []byte:
		return TypeJavaObject, ContainerScalar, nil
	case EnumVariant:
		return TypeBioEnum, ContainerScalar, nil
	case Record:
		if v.BioCode() == 0 && v.BioVersion() == 0 {
			return TypeProperties, ContainerScalar, nil
		}
		return TypeBioObject, ContainerScalar, nil
	case []int8:
		return TypeByte, ContainerArray, nil
	case []int16:
		return TypeShort, ContainerArray, nil
	case []int32:
		return TypeInteger, ContainerArray, nil
	case []int64:
		return TypeLong, ContainerArray, nil
	case []float32:
		return TypeFloat, ContainerArray, nil
	case []float64:
		return TypeDouble, ContainerArray, nil
	case []bool:
		return TypeBoolean, ContainerArray, nil
	case []string:
		return TypeUtfString, ContainerArray, nil
	case RecordList:
		return TypeBioObject, ContainerList, nil
	case RecordArray:
		return TypeBioObject, ContainerArray, nil
	case []Record:
		return TypeBioObject, ContainerArray, nil
	case []EnumVariant:
		return TypeBioEnum, ContainerArray, nil
	default:
		return 0, 0, fmt.Errorf("bio: cannot infer wire type for %T", value)
	}
}

// writePropertiesBody writes a schema-less record body: repeated
// [keyNameUtf][type][container][value] triplets, no dictionary/object
// lookup (spec.md §4.4, §6.3). The [dictionary:0][code:0][version:0]
// header is written by the caller (writeBio), matching how a properties
// record is just a BioObj-less special case of the regular record shape.
func (c *Codec) writePropertiesBody(s *BoStream, rec Record) error {
	for _, key := range rec.Keys() {
		value, ok := rec.Get(key)
		if !ok {
			continue
		}
		typ, container, err := inferBioType(value)
		if err != nil {
			return fmtTagError(ErrUnsupportedType, rec.BioName(), key, "%v", err)
		}
		s.WriteUtfString(key)
		s.WriteRawByte(byte(typ))
		s.WriteRawByte(byte(container))
		if err := c.writeScalarOrArray(s, typ, container, nil, nil, value); err != nil {
			return fmtTagError(ErrUnsupportedType, rec.BioName(), key, "%v", err)
		}
	}
	return nil
}

// readPropertiesBody mirrors writePropertiesBody.
func (c *Codec) readPropertiesBody(s *BiStream) (Record, error) {
	rec := NewRecord(0, 0, 0)
	for s.Available() > 0 {
		name := s.ReadUtfString()
		typ := BioType(s.ReadRawByte())
		container := Container(s.ReadRawByte())
		if s.Err() != nil {
			return nil, wrapIO(s.Err())
		}
		value, err := c.readScalarOrArray(s, typ, container, nil, nil)
		if err != nil {
			return nil, fmtTagError(ErrUnsupportedType, "", name, "%v", err)
		}
		if value != nil {
			rec.Put(name, value)
		}
	}
	return rec, nil
}
