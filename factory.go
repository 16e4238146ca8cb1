package bio

// RecordFactory instantiates concrete Record values for one BioObj,
// replacing the Java original's reflective `getBioClass().getConstructor()`
// dance (spec.md §9 "reflective instantiation is replaced by an explicit
// record-factory interface keyed by (dictionary, code)").
type RecordFactory interface {
	// New constructs a zero-value record of the concrete type.
	New() Record

	// NewFrom optionally builds a record by copying fields out of source.
	// Returns ok=false if this factory has no copy-construction path, in
	// which case the caller falls back to New()+field-by-field copy —
	// mirroring BioFactory.newBioObject(code, source)'s try-the-BioObject-
	// constructor-then-fall-back-to-putAll shape (see DESIGN.md).
	NewFrom(source Record) (Record, bool)
}

// FuncFactory adapts a plain constructor function to RecordFactory for the
// common case where there is no copy-construction path.
type FuncFactory func() Record

func (f FuncFactory) New() Record { return f() }

func (f FuncFactory) NewFrom(source Record) (Record, bool) { return nil, false }

// NewFromDefault is the fallback copy path used when a RecordFactory
// declines NewFrom: default-construct then copy every tag value over,
// exactly like BioFactory's `object.putAll(source)` fallback.
func NewFromDefault(f RecordFactory, source Record) Record {
	if r, ok := f.NewFrom(source); ok {
		return r
	}
	r := f.New()
	r.SetBioDictionary(source.BioDictionary())
	r.SetBioCode(source.BioCode())
	r.SetBioVersion(source.BioVersion())
	r.SetBioName(source.BioName())
	for _, key := range source.Keys() {
		if v, ok := source.Get(key); ok {
			r.Put(key, v)
		}
	}
	return r
}

// instantiate builds the record used to decode obj's tags into: the
// factory-registered concrete type if one is registered, otherwise a
// GenericRecord (spec.md §4.3's "if no class is registered, use a generic
// record").
func instantiate(obj *BioObj, code, version uint16) Record {
	var r Record
	if obj != nil && obj.Factory != nil {
		r = obj.Factory.New()
	} else {
		r = NewRecord(0, code, version)
	}
	r.SetBioCode(code)
	r.SetBioVersion(version)
	if obj != nil {
		r.SetBioName(obj.Name)
		r.SetBioDictionary(obj.Dictionary)
	}
	return r
}
