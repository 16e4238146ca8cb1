package bio

// BioTag describes one named, numbered, typed field of a BioObj (spec.md
// §3). Tags are identified on the wire by Code, never by Name.
type BioTag struct {
	Code      uint16
	Name      string
	Type      BioType
	IsArray   bool
	IsList    bool
	Encodable bool

	// EnumObj resolves ordinals for tags of Type == TypeBioEnum.
	EnumObj *BioEnumObj

	// ObjectTypeID selects the ObjectCodec used for tags of Type ==
	// TypeJavaObject (spec.md §9's opaque-bytes channel). The type id is
	// schema-known, not carried on the wire.
	ObjectTypeID uint16
}

// NewTag builds an encodable scalar tag. Use the With* methods to turn it
// into an array/list tag or attach enum/object metadata.
func NewTag(code uint16, name string, typ BioType) *BioTag {
	return &BioTag{Code: code, Name: name, Type: typ, Encodable: true}
}

func (t *BioTag) WithArray() *BioTag {
	t.IsArray = true
	return t
}

func (t *BioTag) WithList() *BioTag {
	t.IsList = true
	return t
}

func (t *BioTag) WithEnum(e *BioEnumObj) *BioTag {
	t.EnumObj = e
	return t
}

func (t *BioTag) WithObjectTypeID(id uint16) *BioTag {
	t.ObjectTypeID = id
	return t
}

// WithEncodable overrides the default encodable=true (spec.md invariant 3:
// "only tags with encodable == true appear on the wire").
func (t *BioTag) WithEncodable(encodable bool) *BioTag {
	t.Encodable = encodable
	return t
}
