// Package protocol holds the byte-level formats shared with the Particle
// system firmware: cloud name buffers, socket addresses and type tags.
package protocol

// Version represents the sparkhal binding version
const Version = "0.1.0"

// System firmware the bindings were written against
const FirmwareVersion = "0.6.2"

// DataType is the Spark_Data_TypeDef tag passed to spark_variable
type DataType uint8

// Cloud variable type tags
const (
	DataTypeBoolean DataType = 1
	DataTypeInt     DataType = 2
	DataTypeString  DataType = 4
	DataTypeDouble  DataType = 9
)

// String returns the firmware's name for the tag
func (t DataType) String() string {
	switch t {
	case DataTypeBoolean:
		return "CLOUD_VAR_BOOLEAN"
	case DataTypeInt:
		return "CLOUD_VAR_INT"
	case DataTypeString:
		return "CLOUD_VAR_STRING"
	case DataTypeDouble:
		return "CLOUD_VAR_DOUBLE"
	default:
		return "CLOUD_VAR_UNKNOWN"
	}
}
