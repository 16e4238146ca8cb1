package bio

import "fmt"

// encodeXML/decodeXML adapt the configured XMLBridge to the byte-in/
// byte-out shape the frame codec expects (spec.md §4.5).
func (c *Codec) encodeXML(rec Record) ([]byte, error) { return c.xmlBridge.ToXML(rec) }

func (c *Codec) decodeXML(data []byte) (Record, error) { return c.xmlBridge.FromXML(data) }

// encodeBio implements writeBio (spec.md §4.3): resolve the schema,
// write the [dictionary][code][version] header, then dispatch every
// key/value pair through writeValue. ok=false with err=nil means the
// element was silently omitted in lenient mode (unknown dictionary or
// object code); the caller decides what "omitted" means at its level
// (drop from a sequence, or emit an empty top-level frame payload).
func (c *Codec) encodeBio(rec Record) (out []byte, obj *BioObj, ok bool, err error) {
	if rec.BioCode() == 0 && rec.BioVersion() == 0 {
		b, err := c.encodeProperties(rec)
		return b, nil, err == nil, err
	}

	dict, found := Dictionary(rec.BioDictionary())
	if !found {
		if c.validated {
			return nil, nil, false, newParserError(ErrUnknownDictionary, rec.BioName(), "",
				fmt.Errorf("dictionary %d is not registered", rec.BioDictionary()))
		}
		return nil, nil, false, nil
	}
	obj = dict.ObjByCode(rec.BioCode())
	if obj == nil {
		if c.validated {
			return nil, nil, false, newParserError(ErrUnknownObject, rec.BioName(), "",
				fmt.Errorf("object code %d is not registered in dictionary %d", rec.BioCode(), dict.ID))
		}
		return nil, nil, false, nil
	}

	s := NewBoStream()
	if obj.IsLarge {
		s.SetLengthAsInt(true)
	}
	s.WriteRawByte(obj.Dictionary)
	s.WriteUint16(obj.Code)
	s.WriteUint16(obj.Version)

	for _, key := range rec.Keys() {
		value, present := rec.Get(key)
		if !present {
			continue
		}
		if err := c.writeValue(s, obj, dict, key, value); err != nil {
			return nil, nil, false, err
		}
	}
	return s.Bytes(), obj, true, nil
}

// decodeBio implements readBio (spec.md §4.3). Returns (nil, nil) when
// the dictionary/object is unregistered and the codec is lenient.
func (c *Codec) decodeBio(data []byte) (Record, error) {
	s := NewBiStream(data)
	dictionaryID := s.ReadRawByte()
	code := s.ReadUint16()
	version := s.ReadUint16()
	if s.Err() != nil {
		return nil, wrapIO(s.Err())
	}

	if code == 0 && version == 0 {
		return c.readPropertiesBody(s)
	}

	dict, found := Dictionary(dictionaryID)
	if !found {
		if c.validated {
			return nil, newParserError(ErrUnknownDictionary, "", "",
				fmt.Errorf("dictionary %d is not registered", dictionaryID))
		}
		return nil, nil
	}
	obj := dict.ObjByCode(code)
	if obj == nil {
		if c.validated {
			return nil, newParserError(ErrUnknownObject, "", "",
				fmt.Errorf("object code %d is not registered in dictionary %d", code, dictionaryID))
		}
		return nil, nil
	}
	if obj.IsLarge {
		s.SetLengthAsInt(true)
	}

	rec := instantiate(obj, code, version)
	for s.Available() > 0 {
		typ, container, tagCode := s.ReadTagHeader()
		if s.Err() != nil {
			return nil, wrapIO(s.Err())
		}
		tag := obj.TagByCode(tagCode)
		if tag == nil {
			tag = dict.SuperTagByCode(tagCode)
		}
		value, err := c.readScalarOrArray(s, typ, container, tag, dict)
		if err != nil {
			return nil, fmtTagError(ErrTypeMismatch, obj.Name, fmt.Sprintf("code=%d", tagCode), "%v", err)
		}
		if s.Err() != nil {
			return nil, wrapIO(s.Err())
		}
		if tag != nil && value != nil {
			rec.Put(tag.Name, value)
		}
	}
	return rec, nil
}

// writeValue implements spec.md §4.3's writeValue: resolve the tag by
// name (falling back to dictionary super tags), skip silently if it
// can't be resolved or is marked non-encodable, then dispatch on
// container shape.
func (c *Codec) writeValue(s *BoStream, obj *BioObj, dict *BioDictionary, key string, value any) error {
	tag := obj.TagByName(key)
	if tag == nil && dict != nil {
		tag = dict.SuperTagByName(key)
	}
	if tag == nil || !tag.Encodable {
		return nil
	}

	container := ContainerScalar
	switch {
	case tag.IsList:
		container = ContainerList
	case tag.IsArray:
		container = ContainerArray
	}

	// spec.md invariant 5: a nested BioObject scalar whose dictionary is
	// unknown at encode time omits the whole containing tag, header
	// included — so the resolvability check has to happen before the
	// tag header is written.
	if container == ContainerScalar && tag.Type == TypeBioObject {
		rec, ok := value.(Record)
		if !ok {
			return fmt.Errorf("tag %q expects a Record, got %T", key, value)
		}
		b, _, ok2, err := c.encodeBio(rec)
		if err != nil {
			return err
		}
		if !ok2 {
			return nil
		}
		s.WriteTagHeader(tag, container)
		s.WriteBioBytes(b)
		return nil
	}

	s.WriteTagHeader(tag, container)
	if err := c.writeScalarOrArray(s, tag.Type, container, tag, dict, value); err != nil {
		return fmt.Errorf("tag %q: %w", key, err)
	}
	return nil
}

func (c *Codec) writeScalarOrArray(s *BoStream, typ BioType, container Container, tag *BioTag, dict *BioDictionary, value any) error {
	if container == ContainerScalar {
		return c.writeScalar(s, typ, value)
	}
	return c.writeArray(s, typ, value)
}

func (c *Codec) writeScalar(s *BoStream, typ BioType, value any) error {
	switch typ {
	case TypeByte:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("expected int8, got %T", value)
		}
		s.WriteInt8(v)
	case TypeShort:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("expected int16, got %T", value)
		}
		s.WriteInt16(v)
	case TypeInteger:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("expected int32, got %T", value)
		}
		s.WriteInt32(v)
	case TypeLong, TypeTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("expected int64, got %T", value)
		}
		s.WriteInt64(v)
	case TypeFloat:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("expected float32, got %T", value)
		}
		s.WriteFloat32(v)
	case TypeDouble:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("expected float64, got %T", value)
		}
		s.WriteFloat64(v)
	case TypeBoolean:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		s.WriteBool(v)
	case TypeString:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		s.WriteAsciiString(v)
	case TypeUtfString:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		s.WriteUtfString(v)
	case TypeBioEnum:
		v, ok := value.(EnumVariant)
		if !ok {
			return fmt.Errorf("expected EnumVariant, got %T", value)
		}
		s.WriteInt32(int32(v.Ordinal()))
	case TypeJavaObject:
		b, err := c.objectCodec.Marshal(value)
		if err != nil {
			return err
		}
		s.WriteBioBytes(b)
	case TypeBioObject:
		rec, ok := value.(Record)
		if !ok {
			return fmt.Errorf("expected Record, got %T", value)
		}
		b, _, ok2, err := c.encodeBio(rec)
		if err != nil {
			return err
		}
		if !ok2 {
			b = nil
		}
		s.WriteBioBytes(b)
	case TypeProperties:
		rec, ok := value.(Record)
		if !ok {
			return fmt.Errorf("expected Record, got %T", value)
		}
		b, err := c.encodeProperties(rec)
		if err != nil {
			return err
		}
		s.WriteBioBytes(b)
	default:
		return fmt.Errorf("bio: type %s has no scalar wire encoding", typ)
	}
	return nil
}

func (c *Codec) writeArray(s *BoStream, typ BioType, value any) error {
	switch typ {
	case TypeByte:
		v, ok := value.([]int8)
		if !ok {
			return fmt.Errorf("expected []int8, got %T", value)
		}
		s.WriteByteArray(v)
	case TypeShort:
		v, ok := value.([]int16)
		if !ok {
			return fmt.Errorf("expected []int16, got %T", value)
		}
		s.WriteShortArray(v)
	case TypeInteger:
		v, ok := value.([]int32)
		if !ok {
			return fmt.Errorf("expected []int32, got %T", value)
		}
		s.WriteIntArray(v)
	case TypeLong, TypeTime:
		v, ok := value.([]int64)
		if !ok {
			return fmt.Errorf("expected []int64, got %T", value)
		}
		s.WriteLongArray(v)
	case TypeFloat:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("expected []float32, got %T", value)
		}
		s.WriteFloatArray(v)
	case TypeDouble:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("expected []float64, got %T", value)
		}
		s.WriteDoubleArray(v)
	case TypeBoolean:
		v, ok := value.([]bool)
		if !ok {
			return fmt.Errorf("expected []bool, got %T", value)
		}
		s.WriteBooleanArray(v)
	case TypeString:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("expected []string, got %T", value)
		}
		s.WriteAsciiStringArray(v)
	case TypeUtfString:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("expected []string, got %T", value)
		}
		s.WriteUtfStringArray(v)
	case TypeBioEnum:
		v, ok := value.([]EnumVariant)
		if !ok {
			return fmt.Errorf("expected []EnumVariant, got %T", value)
		}
		ordinals := make([]int32, len(v))
		for i, e := range v {
			ordinals[i] = int32(e.Ordinal())
		}
		s.WriteIntArray(ordinals)
	case TypeBioObject, TypeProperties:
		return c.writeObjectArray(s, typ, value)
	case TypeJavaObject:
		return c.writeJavaObjectArray(s, value)
	default:
		return fmt.Errorf("bio: type %s has no array wire encoding", typ)
	}
	return nil
}

// writeObjectArray writes [count:LenW]{[len:LenW][bytes]}×count for
// TypeBioObject/TypeProperties containers (spec.md §6.2). Elements whose
// dictionary is unresolvable are dropped in lenient mode.
func (c *Codec) writeObjectArray(s *BoStream, typ BioType, value any) error {
	records, err := toRecordSlice(value)
	if err != nil {
		return err
	}
	blobs := make([][]byte, 0, len(records))
	for _, rec := range records {
		var b []byte
		var err error
		if typ == TypeProperties {
			b, err = c.encodeProperties(rec)
		} else {
			var ok bool
			b, _, ok, err = c.encodeBio(rec)
			if err == nil && !ok {
				continue
			}
		}
		if err != nil {
			return err
		}
		blobs = append(blobs, b)
	}
	s.WriteLength(len(blobs))
	for _, b := range blobs {
		s.WriteBioBytes(b)
	}
	return nil
}

func (c *Codec) writeJavaObjectArray(s *BoStream, value any) error {
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("expected []any, got %T", value)
	}
	blobs := make([][]byte, len(items))
	for i, item := range items {
		b, err := c.objectCodec.Marshal(item)
		if err != nil {
			return err
		}
		blobs[i] = b
	}
	s.WriteLength(len(blobs))
	for _, b := range blobs {
		s.WriteBioBytes(b)
	}
	return nil
}

func toRecordSlice(value any) ([]Record, error) {
	switch v := value.(type) {
	case []Record:
		return v, nil
	case RecordArray:
		return []Record(v), nil
	case RecordList:
		return []Record(v), nil
	default:
		return nil, fmt.Errorf("expected a record sequence, got %T", value)
	}
}

// readScalarOrArray mirrors writeScalarOrArray (spec.md §4.3's
// readValue). tag may be nil, either because the wire carried a tag code
// this schema doesn't define (spec.md §8 invariant/property 6:
// unknown-tag skip) or because the caller has no tag context at all
// (the properties codec). Either way the bytes for (typ, container) are
// always fully consumed so the stream never desynchronizes; tag-derived
// metadata (enum table, object type id) is used opportunistically when
// present and otherwise degrades to a raw/ordinal value.
func (c *Codec) readScalarOrArray(s *BiStream, typ BioType, container Container, tag *BioTag, dict *BioDictionary) (any, error) {
	if container == ContainerScalar {
		return c.readScalar(s, typ, tag)
	}
	return c.readArray(s, typ, tag, container)
}

func (c *Codec) readScalar(s *BiStream, typ BioType, tag *BioTag) (any, error) {
	switch typ {
	case TypeByte:
		return s.ReadInt8(), nil
	case TypeShort:
		return s.ReadInt16(), nil
	case TypeInteger:
		return s.ReadInt32(), nil
	case TypeLong, TypeTime:
		return s.ReadInt64(), nil
	case TypeFloat:
		return s.ReadFloat32(), nil
	case TypeDouble:
		return s.ReadFloat64(), nil
	case TypeBoolean:
		return s.ReadBool(), nil
	case TypeString:
		return s.ReadAsciiString(), nil
	case TypeUtfString:
		return s.ReadUtfString(), nil
	case TypeBioEnum:
		ordinal := s.ReadInt32()
		if tag != nil && tag.EnumObj != nil {
			return tag.EnumObj.BioEnum(int(ordinal)), nil
		}
		return ordinal, nil
	case TypeJavaObject:
		blob := s.ReadBioBytes()
		if s.Err() != nil {
			return nil, nil
		}
		typeID := uint16(0)
		if tag != nil {
			typeID = tag.ObjectTypeID
		}
		return c.objectCodec.Unmarshal(blob, typeID)
	case TypeBioObject:
		blob := s.ReadBioBytes()
		if s.Err() != nil {
			return nil, nil
		}
		return c.decodeBio(blob)
	case TypeProperties:
		blob := s.ReadBioBytes()
		if s.Err() != nil {
			return nil, nil
		}
		return c.decodeProperties(blob)
	default:
		return nil, fmt.Errorf("bio: type %d has no scalar wire decoding", typ)
	}
}

// readArray mirrors writeArray. container distinguishes a tag-level array
// from a list wire entry (spec.md §8 S3): for TypeBioObject/TypeProperties
// it decides whether the decoded sequence comes back as a RecordArray or
// a RecordList, matching whichever container byte the writer emitted.
func (c *Codec) readArray(s *BiStream, typ BioType, tag *BioTag, container Container) (any, error) {
	switch typ {
	case TypeByte:
		return s.ReadByteArray(), nil
	case TypeShort:
		return s.ReadShortArray(), nil
	case TypeInteger:
		return s.ReadIntArray(), nil
	case TypeLong, TypeTime:
		return s.ReadLongArray(), nil
	case TypeFloat:
		return s.ReadFloatArray(), nil
	case TypeDouble:
		return s.ReadDoubleArray(), nil
	case TypeBoolean:
		return s.ReadBooleanArray(), nil
	case TypeString:
		return s.ReadAsciiStringArray(), nil
	case TypeUtfString:
		return s.ReadUtfStringArray(), nil
	case TypeBioEnum:
		ordinals := s.ReadIntArray()
		if s.Err() != nil {
			return nil, nil
		}
		if tag == nil || tag.EnumObj == nil {
			return ordinals, nil
		}
		// spec.md §4.3 / SPEC_FULL.md's supplemented enum-array rule: no
		// registered variant type at all means the whole array is dropped,
		// not returned as a slice of per-ordinal nils.
		if !tag.EnumObj.HasVariants() {
			return nil, nil
		}
		out := make([]EnumVariant, len(ordinals))
		for i, o := range ordinals {
			out[i] = tag.EnumObj.BioEnum(int(o))
		}
		return out, nil
	case TypeBioObject, TypeProperties:
		return c.readObjectArray(s, typ, container)
	case TypeJavaObject:
		return c.readJavaObjectArray(s, tag)
	default:
		return nil, fmt.Errorf("bio: type %d has no array wire decoding", typ)
	}
}

func (c *Codec) readObjectArray(s *BiStream, typ BioType, container Container) (any, error) {
	n := s.ReadLength()
	if s.Err() != nil {
		return nil, wrapIO(s.Err())
	}
	out := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		blob := s.ReadBioBytes()
		if s.Err() != nil {
			return nil, wrapIO(s.Err())
		}
		var rec Record
		var err error
		if typ == TypeProperties {
			rec, err = c.decodeProperties(blob)
		} else {
			rec, err = c.decodeBio(blob)
		}
		if err != nil {
			return nil, err
		}
		if rec != nil {
			out = append(out, rec)
		}
	}
	if container == ContainerList {
		return RecordList(out), nil
	}
	return RecordArray(out), nil
}

func (c *Codec) readJavaObjectArray(s *BiStream, tag *BioTag) (any, error) {
	n := s.ReadLength()
	if s.Err() != nil {
		return nil, wrapIO(s.Err())
	}
	typeID := uint16(0)
	if tag != nil {
		typeID = tag.ObjectTypeID
	}
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		blob := s.ReadBioBytes()
		if s.Err() != nil {
			return nil, wrapIO(s.Err())
		}
		v, err := c.objectCodec.Unmarshal(blob, typeID)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// encodeProperties writes a properties record's full body, including its
// [0,0,0,0] header (spec.md §6.3).
func (c *Codec) encodeProperties(rec Record) ([]byte, error) {
	s := NewBoStream()
	s.WriteRawByte(0)
	s.WriteUint16(0)
	s.WriteUint16(0)
	if err := c.writePropertiesBody(s, rec); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// decodeProperties decodes a full properties blob, header included —
// encodeProperties always writes the [0,0,0,0,0] header before the body,
// so nested TypeProperties tags carry it too. decodeBio already knows how
// to read that header and fall through to readPropertiesBody on a
// code==0/version==0 record, so we just reuse it.
func (c *Codec) decodeProperties(data []byte) (Record, error) {
	return c.decodeBio(data)
}
