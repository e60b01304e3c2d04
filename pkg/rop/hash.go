package rop

import (
	"bytes"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// fingerprintSpace is the uuid namespace for Outcome fingerprints.
var fingerprintSpace = uuid.MustParse("5b0ae7f4-3c1e-4a9d-9f0e-6c2d8f1a7e53")

// Hash returns a hash consistent with Equal: equal outcomes hash alike.
func (o Outcome[T]) Hash() uint64 {
	return xxhash.Sum64(o.canonical())
}

// Fingerprint is a name-based UUID of the outcome's state, stable across
// processes for values whose encoding does not involve pointers to shared
// resources such as channels.
func (o Outcome[T]) Fingerprint() uuid.UUID {
	return uuid.NewSHA1(fingerprintSpace, o.canonical())
}

func (o Outcome[T]) canonical() []byte {
	var buf bytes.Buffer
	if o.err != nil {
		buf.WriteString("e|")
		buf.WriteString(ErrorType(o.err))
		buf.WriteByte('|')
		buf.WriteString(o.err.Error())
		return buf.Bytes()
	}

	buf.WriteString("v|")
	buf.WriteString(typeName(reflect.TypeOf((*T)(nil)).Elem()))
	buf.WriteByte('|')
	encodeValue(&buf, reflect.ValueOf(&o.value).Elem(), 0)
	return buf.Bytes()
}

const maxEncodeDepth = 32

// encodeValue writes a representation of v under which reflect.DeepEqual
// values encode identically. Pointers are followed, map entries are sorted.
func encodeValue(buf *bytes.Buffer, v reflect.Value, depth int) {
	if depth > maxEncodeDepth {
		buf.WriteString("...")
		return
	}
	if !v.IsValid() {
		buf.WriteString("nil")
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		writeFloat(buf, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(buf, real(c))
		buf.WriteByte('+')
		writeFloat(buf, imag(c))
		buf.WriteByte('i')
	case reflect.String:
		buf.WriteString(strconv.Quote(v.String()))
	case reflect.Pointer:
		if v.IsNil() {
			buf.WriteString("nil")
			return
		}
		buf.WriteByte('&')
		encodeValue(buf, v.Elem(), depth+1)
	case reflect.Interface:
		if v.IsNil() {
			buf.WriteString("nil")
			return
		}
		buf.WriteString(typeName(v.Elem().Type()))
		buf.WriteByte('(')
		encodeValue(buf, v.Elem(), depth+1)
		buf.WriteByte(')')
	case reflect.Array, reflect.Slice:
		if v.Kind() == reflect.Slice && v.IsNil() {
			buf.WriteString("nil")
			return
		}
		buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodeValue(buf, v.Index(i), depth+1)
		}
		buf.WriteByte(']')
	case reflect.Map:
		if v.IsNil() {
			buf.WriteString("nil")
			return
		}
		entries := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			var entry bytes.Buffer
			encodeValue(&entry, iter.Key(), depth+1)
			entry.WriteByte(':')
			encodeValue(&entry, iter.Value(), depth+1)
			entries = append(entries, entry.String())
		}
		sort.Strings(entries)
		buf.WriteByte('{')
		for i, e := range entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(e)
		}
		buf.WriteByte('}')
	case reflect.Struct:
		buf.WriteByte('{')
		for i := 0; i < v.NumField(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodeValue(buf, v.Field(i), depth+1)
		}
		buf.WriteByte('}')
	case reflect.Func:
		// DeepEqual treats only nil funcs as equal.
		if v.IsNil() {
			buf.WriteString("func(nil)")
		} else {
			buf.WriteString("func")
		}
	case reflect.Chan, reflect.UnsafePointer:
		buf.WriteString(strconv.FormatUint(uint64(v.Pointer()), 16))
	default:
		buf.WriteString(v.Type().String())
	}
}

func writeFloat(buf *bytes.Buffer, f float64) {
	if f == 0 {
		f = 0 // -0 and +0 are DeepEqual
	}
	if math.IsNaN(f) {
		buf.WriteString("NaN")
		return
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}
