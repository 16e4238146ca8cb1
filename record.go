package bio

// Record is the narrow interface the codec needs from a bio object
// (spec.md §1: "the BioObject in-memory container ... is out of scope,
// referenced only by interface"). Any type satisfying Record can be
// encoded; GenericRecord is the concrete fallback the codec constructs on
// decode when no RecordFactory is registered for an object (spec.md §4.3
// "use a generic record with (code, name=null, version)").
type Record interface {
	BioDictionary() uint8
	BioCode() uint16
	BioVersion() uint16
	BioName() string

	SetBioDictionary(uint8)
	SetBioCode(uint16)
	SetBioVersion(uint16)
	SetBioName(string)

	// Keys returns tag names in insertion order (spec.md's "Non-goals":
	// key order in the output follows the record's iteration order, no
	// canonicalization).
	Keys() []string
	Get(name string) (any, bool)
	Put(name string, value any)
}

// GenericRecord is an ordered tag-name -> value map, the concrete Record
// implementation used whenever no factory-registered concrete type is
// available. Insertion order is preserved so Keys() reproduces the order
// values were Put, matching spec.md's key-order invariant.
type GenericRecord struct {
	dictionary uint8
	code       uint16
	version    uint16
	name       string

	keys   []string
	values map[string]any
}

var _ Record = (*GenericRecord)(nil)

// NewRecord creates an empty GenericRecord for the given schema identity.
// Pass code=0, version=0 to build a properties record (spec.md §3).
func NewRecord(dictionary uint8, code, version uint16) *GenericRecord {
	return &GenericRecord{
		dictionary: dictionary,
		code:       code,
		version:    version,
		values:     make(map[string]any),
	}
}

func (r *GenericRecord) BioDictionary() uint8 { return r.dictionary }
func (r *GenericRecord) BioCode() uint16 { return r.code }
func (r *GenericRecord) BioVersion() uint16 { return r.version }
func (r *GenericRecord) BioName() string { return r.name }
func (r *GenericRecord) SetBioDictionary(d uint8) { r.dictionary = d }
func (r *GenericRecord) SetBioCode(c uint16) { r.code = c }
func (r *GenericRecord) SetBioVersion(v uint16) { r.version = v }
func (r *GenericRecord) SetBioName(n string) { r.name = n }

func (r *GenericRecord) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r *GenericRecord) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

func (r *GenericRecord) Put(name string, value any) {
	if _, exists := r.values[name]; !exists {
		r.keys = append(r.keys, name)
	}
	r.values[name] = value
}

// RecordArray marks a sequence of records that must decode back to an
// array (FlagArray), never a list. Distinguishing the two Go-side is what
// keeps container fidelity (spec.md §8 invariant 2) representable at all,
// since a bare []Record carries no such tag.
type RecordArray []Record

// RecordList marks a sequence of records that must decode back to a list
// (FlagList). See RecordArray.
type RecordList []Record

// Narrow attempts to assert every element of records to T, returning the
// narrowed slice and true if every element matched, or nil and false
// otherwise. This replaces spec.md §4.6's Java common-ancestor-class walk:
// Go has no runtime class hierarchy to walk, so a decoded BioObject
// array/list is always handed back as []Record, and a caller that knows
// the concrete registered type can narrow to it explicitly. See
// SPEC_FULL.md's REDESIGN FLAGS.
func Narrow[T Record](records []Record) ([]T, bool) {
	out := make([]T, len(records))
	for i, r := range records {
		t, ok := r.(T)
		if !ok {
			return nil, false
		}
		out[i] = t
	}
	return out, true
}
