package tablestore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Every encoded value is a one-byte tag followed by its payload. Integers
// and floats are 8 bytes big-endian; strings and blobs are prefixed with
// a 4-byte length.
const (
	tagNull byte = iota
	tagInt
	tagFloat
	tagBoolean
	tagString
	tagBlob
)

func encodeValues(vals []interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	for _, val := range vals {
		if err := encodeValue(buf, val); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, val interface{}) error {
	switch v := val.(type) {
	case nil:
		buf.WriteByte(tagNull)
	case int64:
		buf.WriteByte(tagInt)
		buf.Write(encodeInteger(uint64(v)))
	case float64:
		buf.WriteByte(tagFloat)
		buf.Write(encodeInteger(math.Float64bits(v)))
	case bool:
		buf.WriteByte(tagBoolean)
		if v {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	case string:
		buf.WriteByte(tagString)
		writeBytes(buf, []byte(v))
	case []byte:
		buf.WriteByte(tagBlob)
		writeBytes(buf, v)
	default:
		return fmt.Errorf("can't encode value of type %T", val)
	}
	return nil
}

// Encodes an integer in 8 bytes.
func encodeInteger(val uint64) []byte {
	intBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(intBytes, val)
	return intBytes
}

func writeBytes(buf *bytes.Buffer, b []byte) {
	lenBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBytes, uint32(len(b)))
	buf.Write(lenBytes)
	buf.Write(b)
}

// decodeValues decodes every value in b.
func decodeValues(b []byte) ([]interface{}, error) {
	r := bytes.NewReader(b)
	var out []interface{}
	for r.Len() > 0 {
		val, err := decodeValue(r)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

func decodeValue(r *bytes.Reader) (interface{}, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNull:
		return nil, nil
	case tagInt:
		n, err := readUint64(r)
		return int64(n), err
	case tagFloat:
		n, err := readUint64(r)
		return math.Float64frombits(n), err
	case tagBoolean:
		b, err := r.ReadByte()
		return b != 0, err
	case tagString:
		b, err := readBytes(r)
		return string(b), err
	case tagBlob:
		return readBytes(r)
	default:
		return nil, fmt.Errorf("bad value tag %d", tag)
	}
}

func readUint64(r *bytes.Reader) (uint64, error) {
	b := make([]byte, 8)
	if _, err := io.ReadFull(r, b); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func readBytes(r *bytes.Reader) ([]byte, error) {
	lenBytes := make([]byte, 4)
	if _, err := io.ReadFull(r, lenBytes); err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint32(lenBytes)
	if int64(length) > int64(r.Len()) {
		return nil, io.ErrUnexpectedEOF
	}
	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}
