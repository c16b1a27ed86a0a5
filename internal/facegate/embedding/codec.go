package embedding

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrCorruptEmbedding indicates a stored blob whose length is not a
// multiple of 4 bytes.  Empty blobs are NOT corrupt: an empty blob means
// "no face data registered" and decodes to an empty vector.
var ErrCorruptEmbedding = errors.New("corrupt embedding blob")

// Encode serializes a float32 vector to its storage form: 4 bytes per
// element, little-endian, concatenated in vector order.
func Encode(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

// Decode reconstructs a vector from its storage form.  The round-trip
// Decode(Encode(v)) is bit-exact for every finite v.
func Decode(blob []byte) ([]float32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrCorruptEmbedding, len(blob))
	}
	v := make([]float32, len(blob)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[4*i:]))
	}
	return v, nil
}
