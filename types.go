package bio

// BioType is the wire type tag written as a single byte before every
// scalar/array/list payload (spec.md §3, §6.2). The numeric values are
// fixed for wire compatibility; see DESIGN.md's "types.go" entry for the
// provenance of this specific table.
type BioType byte

const (
	TypeByte BioType = iota + 1
	TypeShort
	TypeInteger
	TypeLong
	TypeFloat
	TypeDouble
	TypeBoolean
	TypeString    // ASCII
	TypeUtfString // UTF-8
	TypeTime      // epoch milliseconds, wire-identical to Long
	TypeBioEnum   // ordinal, wire-identical to Integer
	TypeJavaObject
	TypeBioObject
	TypeProperties
)

func (t BioType) String() string {
	switch t {
	case TypeByte:
		return "Byte"
	case TypeShort:
		return "Short"
	case TypeInteger:
		return "Integer"
	case TypeLong:
		return "Long"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	case TypeBoolean:
		return "Boolean"
	case TypeString:
		return "String"
	case TypeUtfString:
		return "UtfString"
	case TypeTime:
		return "Time"
	case TypeBioEnum:
		return "BioEnum"
	case TypeJavaObject:
		return "JavaObject"
	case TypeBioObject:
		return "BioObject"
	case TypeProperties:
		return "Properties"
	default:
		return "Unknown"
	}
}

// Container identifies whether a tag entry on the wire is a scalar, an
// array, or a list (spec.md §4.1, §6.2).
type Container byte

const (
	ContainerScalar Container = 0
	ContainerArray  Container = 1
	ContainerList   Container = 2
)

// Outer frame flag bits (spec.md §4.2, §6.1).
const (
	FlagCompressed byte = 0x01
	FlagArray      byte = 0x02
	FlagList       byte = 0x04
	FlagEncrypted  byte = 0x08
	FlagXML        byte = 0x10
)
