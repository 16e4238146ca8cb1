package bio

// EnumVariant is implemented by concrete enum-like values used for
// BioEnum-typed tags. The wire only ever carries the ordinal.
type EnumVariant interface {
	Ordinal() int
}

// BioEnumObj is the schema-side registry of ordinal -> EnumVariant for one
// enum type (spec.md §3 "BioEnumObj", §6.5 "enumObj(id, code).bioEnum(ordinal)").
type BioEnumObj struct {
	Dictionary uint8
	Code       uint16
	Name       string

	variants map[int]EnumVariant
}

// NewEnumObj creates an enum descriptor. Variants are registered with
// Register.
func NewEnumObj(dictionary uint8, code uint16, name string) *BioEnumObj {
	return &BioEnumObj{
		Dictionary: dictionary,
		Code:       code,
		Name:       name,
		variants:   make(map[int]EnumVariant),
	}
}

// Register associates an ordinal with its concrete variant.
func (e *BioEnumObj) Register(v EnumVariant) *BioEnumObj {
	e.variants[v.Ordinal()] = v
	return e
}

// BioEnum resolves ordinal to its registered variant. Returns nil if the
// enum class for this ordinal is unknown, matching spec.md §4.3's
// "if the enum class is unknown, return null (and the entry is dropped)".
func (e *BioEnumObj) BioEnum(ordinal int) EnumVariant {
	if e == nil {
		return nil
	}
	return e.variants[ordinal]
}

// HasVariants reports whether any concrete variant type has been
// registered for this enum. An array/list of BioEnum ordinals decodes to
// nil in full when this is false, mirroring the Java original's
// `enumObj.getBioClass() != null` gate on the whole array rather than a
// per-ordinal one.
func (e *BioEnumObj) HasVariants() bool {
	return e != nil && len(e.variants) > 0
}
