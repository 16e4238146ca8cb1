package bio

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// BioDictionary is a namespace of object/tag/enum schemas identified by a
// u8 id (spec.md §3 "BioDictionary", GLOSSARY "Dictionary"). Once
// registered it is read-only: all codec paths read it without locking
// (spec.md §5).
type BioDictionary struct {
	ID uint8

	objsByCode map[uint16]*BioObj
	objsByName map[string]*BioObj
	enums      map[uint16]*BioEnumObj

	superTagsByCode map[uint16]*BioTag
	superTagsByName map[string]*BioTag
}

// NewDictionary creates an empty dictionary. Populate it with AddObj/
// AddEnum/AddSuperTag, then Register it before any codec uses it.
func NewDictionary(id uint8) *BioDictionary {
	return &BioDictionary{
		ID:              id,
		objsByCode:      make(map[uint16]*BioObj),
		objsByName:      make(map[string]*BioObj),
		enums:           make(map[uint16]*BioEnumObj),
		superTagsByCode: make(map[uint16]*BioTag),
		superTagsByName: make(map[string]*BioTag),
	}
}

// AddObj registers an object type in this dictionary.
func (d *BioDictionary) AddObj(o *BioObj) *BioDictionary {
	d.objsByCode[o.Code] = o
	d.objsByName[o.Name] = o
	return d
}

// AddEnum registers an enum type in this dictionary.
func (d *BioDictionary) AddEnum(e *BioEnumObj) *BioDictionary {
	d.enums[e.Code] = e
	return d
}

// AddSuperTag registers a dictionary-scoped tag usable by any object that
// doesn't define its own tag of the same code/name (GLOSSARY "Super tag").
func (d *BioDictionary) AddSuperTag(t *BioTag) *BioDictionary {
	d.superTagsByCode[t.Code] = t
	d.superTagsByName[t.Name] = t
	return d
}

// ObjByCode looks up an object descriptor by its numeric code.
func (d *BioDictionary) ObjByCode(code uint16) *BioObj { return d.objsByCode[code] }

// ObjByName looks up an object descriptor by its schema name.
func (d *BioDictionary) ObjByName(name string) *BioObj { return d.objsByName[name] }

// EnumObj looks up an enum descriptor by its numeric code.
func (d *BioDictionary) EnumObj(code uint16) *BioEnumObj { return d.enums[code] }

// SuperTagByCode looks up a dictionary-scoped super tag by code.
func (d *BioDictionary) SuperTagByCode(code uint16) *BioTag { return d.superTagsByCode[code] }

// SuperTagByName looks up a dictionary-scoped super tag by name.
func (d *BioDictionary) SuperTagByName(name string) *BioTag { return d.superTagsByName[name] }

// registry is the process-wide dictionary set (spec.md §5 "the shared
// state is the process-wide dictionary registry"). It is built once at
// startup via Register and thereafter only read, so a concurrent-safe map
// with no hot-path locking — the same shape as the teacher's sizeCache in
// fixed.go — is the right fit rather than a mutex-guarded map.
var registry = xsync.NewMapOf[uint8, *BioDictionary]()

// Register adds d to the process-wide registry, making it visible to every
// Codec instance. Intended to be called once per dictionary at startup
// (spec.md §5 "init registers all objects, tags, and enums").
func Register(d *BioDictionary) {
	registry.Store(d.ID, d)
}

// Dictionary looks up a registered dictionary by id.
func Dictionary(id uint8) (*BioDictionary, bool) {
	return registry.Load(id)
}

// Reset discards every registered dictionary (spec.md §5 "teardown
// discards the registry"). Intended for test isolation between suites
// that register conflicting schemas.
func Reset() {
	registry.Clear()
}
