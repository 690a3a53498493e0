package base

import "fmt"

const (
	// FrameMagic opens every frame, big-endian on the wire.
	FrameMagic uint16 = 0xE3DC

	// ProtocolVersion is the only version current controllers speak, carried
	// in the low nibble of the frame control byte.
	ProtocolVersion byte = 0x01

	// ChecksumFlag in the frame control byte announces a trailing CRC-32.
	ChecksumFlag byte = 0x10

	// DefaultPort is the controller's RSCP listener.
	DefaultPort = 5033
)

// Namespace is the device subsystem a tag belongs to, the high byte of the
// tag. Named namespaces live in the tags package.
type Namespace byte

// Tag identifies an item: namespace byte followed by a three byte identifier.
// Bit 23 marks an item as a response to the corresponding request tag.
type Tag uint32

const tagResponseBit Tag = 0x00800000

func (t Tag) Namespace() Namespace { return Namespace(t >> 24) }

// ID returns the in-namespace identifier including the response bit.
func (t Tag) ID() uint32 { return uint32(t) & 0x00ffffff }

func (t Tag) IsResponse() bool { return t&tagResponseBit != 0 }

// Response returns the tag with the response bit set.
func (t Tag) Response() Tag { return t | tagResponseBit }

// Request returns the tag with the response bit cleared.
func (t Tag) Request() Tag { return t &^ tagResponseBit }

// Matches reports whether both tags name the same item, ignoring the
// response bit on either side.
func (t Tag) Matches(o Tag) bool { return t.Request() == o.Request() }

func (t Tag) String() string { return fmt.Sprintf("0x%08X", uint32(t)) }

// DataType is the wire type code of an item value.
type DataType byte

const (
	DataTypeNone      DataType = 0x00
	DataTypeBool      DataType = 0x01
	DataTypeChar8     DataType = 0x02
	DataTypeUChar8    DataType = 0x03
	DataTypeInt16     DataType = 0x04
	DataTypeUInt16    DataType = 0x05
	DataTypeInt32     DataType = 0x06
	DataTypeUInt32    DataType = 0x07
	DataTypeInt64     DataType = 0x08
	DataTypeUInt64    DataType = 0x09
	DataTypeFloat32   DataType = 0x0A
	DataTypeDouble64  DataType = 0x0B
	DataTypeBitfield  DataType = 0x0C
	DataTypeCString   DataType = 0x0D
	DataTypeContainer DataType = 0x0E
	DataTypeTimestamp DataType = 0x0F
	DataTypeByteArray DataType = 0x10
	DataTypeError     DataType = 0xFF
)

func (d DataType) String() string {
	switch d {
	case DataTypeNone:
		return "none"
	case DataTypeBool:
		return "bool"
	case DataTypeChar8:
		return "char8"
	case DataTypeUChar8:
		return "uchar8"
	case DataTypeInt16:
		return "int16"
	case DataTypeUInt16:
		return "uint16"
	case DataTypeInt32:
		return "int32"
	case DataTypeUInt32:
		return "uint32"
	case DataTypeInt64:
		return "int64"
	case DataTypeUInt64:
		return "uint64"
	case DataTypeFloat32:
		return "float32"
	case DataTypeDouble64:
		return "double64"
	case DataTypeBitfield:
		return "bitfield"
	case DataTypeCString:
		return "cstring"
	case DataTypeContainer:
		return "container"
	case DataTypeTimestamp:
		return "timestamp"
	case DataTypeByteArray:
		return "bytearray"
	case DataTypeError:
		return "error"
	default:
		return "unknown"
	}
}

// UserLevel is the access level the controller grants after authentication.
type UserLevel byte

const (
	UserLevelNotAuthorized UserLevel = 0
	UserLevelUser          UserLevel = 10
	UserLevelInstaller     UserLevel = 20
	UserLevelService       UserLevel = 30
	UserLevelAdmin         UserLevel = 40
	UserLevelE3dc          UserLevel = 50
	UserLevelE3dcRoot      UserLevel = 60
	UserLevelUnknown       UserLevel = 0xFF
)

func (u UserLevel) String() string {
	switch u {
	case UserLevelNotAuthorized:
		return "not-authorized"
	case UserLevelUser:
		return "user"
	case UserLevelInstaller:
		return "installer"
	case UserLevelService:
		return "service"
	case UserLevelAdmin:
		return "admin"
	case UserLevelE3dc:
		return "e3dc"
	case UserLevelE3dcRoot:
		return "e3dc-root"
	default:
		return "unknown"
	}
}

// ErrorCode is the payload of an error typed item, the device side failure
// reason for the request tag it answers.
type ErrorCode uint32

const (
	ErrorCodeNotHandled   ErrorCode = 0x01
	ErrorCodeAccessDenied ErrorCode = 0x02
	ErrorCodeFormat       ErrorCode = 0x03
	ErrorCodeAgain        ErrorCode = 0x04
	ErrorCodeOutOfBounds  ErrorCode = 0x05
	ErrorCodeNotAvailable ErrorCode = 0x06
	ErrorCodeUnknownTag   ErrorCode = 0x07
	ErrorCodeAlreadyInUse ErrorCode = 0x08
	ErrorCodeUnknown      ErrorCode = 0xFF
)

func (e ErrorCode) String() string {
	switch e {
	case ErrorCodeNotHandled:
		return "not-handled"
	case ErrorCodeAccessDenied:
		return "access-denied"
	case ErrorCodeFormat:
		return "format"
	case ErrorCodeAgain:
		return "again"
	case ErrorCodeOutOfBounds:
		return "out-of-bounds"
	case ErrorCodeNotAvailable:
		return "not-available"
	case ErrorCodeUnknownTag:
		return "unknown-tag"
	case ErrorCodeAlreadyInUse:
		return "already-in-use"
	default:
		return "unknown"
	}
}
