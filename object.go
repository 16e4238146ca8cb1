package bio

// BioObj is the schema descriptor for one record type: a (dictionary,
// code, version) triple, its tags indexed both ways, and whether its
// nested-blob length fields are 2 or 4 bytes wide (spec.md §3 "BioObj").
type BioObj struct {
	Dictionary uint8
	Code       uint16
	Version    uint16
	IsLarge    bool
	Name       string

	tagsByCode map[uint16]*BioTag
	tagsByName map[string]*BioTag

	// Factory, if set, is used to instantiate concrete Record values on
	// decode instead of falling back to GenericRecord (spec.md §4.3,
	// §6.5 "record factory").
	Factory RecordFactory
}

// NewObj creates an object descriptor with no tags registered yet.
func NewObj(dictionary uint8, code, version uint16, name string) *BioObj {
	return &BioObj{
		Dictionary: dictionary,
		Code:       code,
		Version:    version,
		Name:       name,
		tagsByCode: make(map[uint16]*BioTag),
		tagsByName: make(map[string]*BioTag),
	}
}

// WithLarge marks this object as using 4-byte length prefixes for its own
// framing and every nested blob it writes (spec.md §3 "isLarge").
func (o *BioObj) WithLarge(large bool) *BioObj {
	o.IsLarge = large
	return o
}

// WithFactory attaches a RecordFactory used to instantiate concrete
// records of this type on decode.
func (o *BioObj) WithFactory(f RecordFactory) *BioObj {
	o.Factory = f
	return o
}

// AddTag registers a tag, indexed by both its code and its name.
func (o *BioObj) AddTag(t *BioTag) *BioObj {
	o.tagsByCode[t.Code] = t
	o.tagsByName[t.Name] = t
	return o
}

// TagByCode looks up a tag by its wire code.
func (o *BioObj) TagByCode(code uint16) *BioTag { return o.tagsByCode[code] }

// TagByName looks up a tag by its schema name.
func (o *BioObj) TagByName(name string) *BioTag { return o.tagsByName[name] }

// Tags returns every registered tag, in no particular order.
func (o *BioObj) Tags() []*BioTag {
	tags := make([]*BioTag, 0, len(o.tagsByCode))
	for _, t := range o.tagsByCode {
		tags = append(tags, t)
	}
	return tags
}
