package protocol

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeName(t *testing.T) {
	testCases := []string{"", "a", "tempF", "count", "exactly12chr"}

	for _, name := range testCases {
		buf, err := EncodeName(name)
		if err != nil {
			t.Fatalf("EncodeName(%q) failed: %v", name, err)
		}
		if len(buf) != NameBufferSize {
			t.Fatalf("Expected %d byte buffer, got %d", NameBufferSize, len(buf))
		}
		if !bytes.Equal(buf[:len(name)], []byte(name)) {
			t.Errorf("EncodeName(%q) prefix = %v", name, buf[:len(name)])
		}
		for i := len(name); i < NameBufferSize; i++ {
			if buf[i] != 0 {
				t.Errorf("EncodeName(%q) byte %d = %d, want 0", name, i, buf[i])
			}
		}
		if buf.String() != name {
			t.Errorf("String() = %q, want %q", buf.String(), name)
		}
	}
}

func TestEncodeNameTooLong(t *testing.T) {
	for _, name := range []string{"thirteen_char", "this_name_too_long", strings.Repeat("x", 64)} {
		if _, err := EncodeName(name); err != ErrNameTooLong {
			t.Errorf("EncodeName(%q) error = %v, want ErrNameTooLong", name, err)
		}
	}
}

func TestEncodeNameBoundary(t *testing.T) {
	if _, err := EncodeName(strings.Repeat("n", MaxNameLength)); err != nil {
		t.Errorf("12 byte name rejected: %v", err)
	}
	if _, err := EncodeName(strings.Repeat("n", MaxNameLength+1)); err != ErrNameTooLong {
		t.Errorf("13 byte name error = %v, want ErrNameTooLong", err)
	}
}

func TestEncodeNameEmpty(t *testing.T) {
	buf, err := EncodeName("")
	if err != nil {
		t.Fatalf("empty name rejected: %v", err)
	}
	if buf != (NameBuffer{}) {
		t.Errorf("Expected all-zero buffer, got %v", buf)
	}
}

func TestEncodeNameConsistency(t *testing.T) {
	buf1, _ := EncodeName("tempF")
	buf2, _ := EncodeName("tempF")

	if buf1 != buf2 {
		t.Errorf("EncodeName not consistent: %v vs %v", buf1, buf2)
	}

	expected := NameBuffer{'t', 'e', 'm', 'p', 'F', 0, 0, 0, 0, 0, 0, 0, 0}
	if buf1 != expected {
		t.Errorf("EncodeName(tempF) = %v, want %v", buf1, expected)
	}
}

func TestDataTypeTags(t *testing.T) {
	if DataTypeInt != 2 || DataTypeBoolean != 1 || DataTypeString != 4 || DataTypeDouble != 9 {
		t.Error("Cloud variable type tags do not match Spark_Data_TypeDef")
	}
	if DataTypeInt.String() != "CLOUD_VAR_INT" {
		t.Errorf("Unexpected name %q", DataTypeInt.String())
	}
}
