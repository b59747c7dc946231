// Package flatree: versioned binary codec for the array-triple encoding.
package flatree

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrInvalidStream is returned when Decode is handed a byte stream that
// did not originate from Encode: wrong magic or version, an undecodable
// payload, or a mismatched array triple. Never retried.
var ErrInvalidStream = errors.New("flatree: invalid stream")

// codecVersion is bumped whenever the wire layout changes.
const codecVersion = 1

// codecHeader prefixes every encoded tree; Decode rejects anything else.
var codecHeader = [5]byte{'g', 't', 'r', 'e', codecVersion}

// wirePayload is the on-wire form of the array triple, written in the
// fixed order elements, childOffsets, childCounts.
type wirePayload[T comparable] struct {
	Elements     []T   `msgpack:"elements"`
	ChildOffsets []int `msgpack:"child_offsets"`
	ChildCounts  []int `msgpack:"child_counts"`
}

// Encode writes the subtree rooted at this view to w.
//
// A non-root view is first re-flattened into fresh zero-based arrays, so
// only the subtree — re-indexed from 0 — is persisted, never the ambient
// arrays beyond it.
func (n Node[T]) Encode(w io.Writer) error {
	root := n
	if n.index != 0 {
		var err error
		if root, err = Flatten[T](n); err != nil {
			return err
		}
	}
	if _, err := w.Write(codecHeader[:]); err != nil {
		return fmt.Errorf("flatree: write header: %w", err)
	}
	return msgpack.NewEncoder(w).Encode(wirePayload[T]{
		Elements:     root.elements,
		ChildOffsets: root.childOffsets,
		ChildCounts:  root.childCounts,
	})
}

// Decode reconstructs a flattened tree from r with its view fixed at the
// root. Beyond stream integrity (header, decodability, matching array
// lengths) no structural validation is performed: the reader trusts the
// writer's invariants, and unexported fields keep any other construction
// path closed.
func Decode[T comparable](r io.Reader) (Node[T], error) {
	var header [5]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Node[T]{}, fmt.Errorf("%w: short header: %v", ErrInvalidStream, err)
	}
	if header != codecHeader {
		return Node[T]{}, fmt.Errorf("%w: bad magic or version %v", ErrInvalidStream, header)
	}

	var p wirePayload[T]
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		return Node[T]{}, fmt.Errorf("%w: %v", ErrInvalidStream, err)
	}
	size := len(p.Elements)
	if size < 1 || len(p.ChildOffsets) != size || len(p.ChildCounts) != size {
		return Node[T]{}, fmt.Errorf("%w: array lengths %d/%d/%d",
			ErrInvalidStream, size, len(p.ChildOffsets), len(p.ChildCounts))
	}

	return Node[T]{
		index:        0,
		elements:     p.Elements,
		childOffsets: p.ChildOffsets,
		childCounts:  p.ChildCounts,
	}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler via Encode.
func (n Node[T]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler via Decode.
func (n *Node[T]) UnmarshalBinary(data []byte) error {
	decoded, err := Decode[T](bytes.NewReader(data))
	if err != nil {
		return err
	}
	*n = decoded
	return nil
}
