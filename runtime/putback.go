package dxf

import (
	"errors"
	"io"
)

// Source supplies code pairs in order. Next returns io.EOF at the end of
// input; any other error comes from the layer below.
type Source interface {
	Next() (CodePair, error)
}

// PutBack wraps a Source with a single slot of pushback, so a decoder can
// read a pair, look at its tag and hand it back for the next read.
//
// PutBack is not safe for concurrent use.
type PutBack struct {
	src  Source
	held CodePair
	full bool
}

// NewPutBack wraps src. If src already is a *PutBack it is returned
// unchanged so layers share one slot.
func NewPutBack(src Source) *PutBack {
	if pb, ok := src.(*PutBack); ok {
		return pb
	}
	return &PutBack{src: src}
}

// Next returns the pushed-back pair if there is one, and otherwise the
// next pair of the underlying source.
func (b *PutBack) Next() (CodePair, error) {
	if b.full {
		b.full = false
		return b.held, nil
	}
	return b.src.Next()
}

// PutBack stores p for redelivery by the next call to Next. It returns
// ErrPutBackFull, and keeps the pair it already holds, when the slot is
// occupied.
func (b *PutBack) PutBack(p CodePair) error {
	if b.full {
		return ErrPutBackFull
	}
	b.held, b.full = p, true
	return nil
}

// Buffered reports whether a pushed-back pair is waiting.
func (b *PutBack) Buffered() bool { return b.full }

// Need reads the next pair of a structure that is not complete yet. The
// end of input is reported as ErrUnexpectedEndOfInput.
func (b *PutBack) Need() (CodePair, error) {
	p, err := b.Next()
	if errors.Is(err, io.EOF) {
		return CodePair{}, ErrUnexpectedEndOfInput
	}
	return p, err
}

// Expect reads the next pair and requires its tag to be code. A pair with
// another tag is pushed back and reported as an UnexpectedCodeError, or as
// ErrEntityClosed when it starts the next entity.
func (b *PutBack) Expect(code int) (CodePair, error) {
	p, err := b.Need()
	if err != nil {
		return CodePair{}, err
	}
	if p.Code != code {
		if err := b.PutBack(p); err != nil {
			return CodePair{}, err
		}
		if p.Code == CodeEntityType {
			return CodePair{}, ErrEntityClosed
		}
		return CodePair{}, UnexpectedCodeError{Code: p.Code, Want: []int{code}}
	}
	return p, nil
}

// Optional reads the next pair and consumes it only if its tag is code;
// otherwise the pair is pushed back and ok is false. The end of input
// counts as absent.
func (b *PutBack) Optional(code int) (p CodePair, ok bool, err error) {
	p, err = b.Next()
	if errors.Is(err, io.EOF) {
		return CodePair{}, false, nil
	}
	if err != nil {
		return CodePair{}, false, err
	}
	if p.Code != code {
		return CodePair{}, false, b.PutBack(p)
	}
	return p, true, nil
}

// ExpectFloat64 reads a mandatory float field with tag code.
func (b *PutBack) ExpectFloat64(code int) (float64, error) {
	p, err := b.Expect(code)
	if err != nil {
		return 0, err
	}
	return p.Float64()
}

// ExpectInt16 reads a mandatory int16 field with tag code.
func (b *PutBack) ExpectInt16(code int) (int16, error) {
	p, err := b.Expect(code)
	if err != nil {
		return 0, err
	}
	return p.Int16()
}

// ExpectInt32 reads a mandatory int32 field with tag code.
func (b *PutBack) ExpectInt32(code int) (int32, error) {
	p, err := b.Expect(code)
	if err != nil {
		return 0, err
	}
	return p.Int32()
}

// ExpectBool reads a mandatory flag field with tag code.
func (b *PutBack) ExpectBool(code int) (bool, error) {
	p, err := b.Expect(code)
	if err != nil {
		return false, err
	}
	return p.Bool()
}

// SliceSource is a Source over an in-memory sequence of pairs.
type SliceSource struct {
	pairs []CodePair
}

// NewSliceSource returns a Source that yields pairs in order.
func NewSliceSource(pairs []CodePair) *SliceSource { return &SliceSource{pairs: pairs} }

// Next implements Source.
func (s *SliceSource) Next() (CodePair, error) {
	if len(s.pairs) == 0 {
		return CodePair{}, io.EOF
	}
	p := s.pairs[0]
	s.pairs = s.pairs[1:]
	return p, nil
}

// Len returns the number of pairs not yet delivered.
func (s *SliceSource) Len() int { return len(s.pairs) }
