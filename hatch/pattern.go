package hatch

import (
	"errors"
	"io"

	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// ReadPatternLines decodes n pattern line records, the count having been
// read by the caller from code 78, and appends them to h.PatternLines.
func (d *Decoder) ReadPatternLines(h *Hatch, n int) error {
	for i := 0; i < n; i++ {
		var line PatternLine
		var err error
		if d.opts.StrictPatternLines {
			line, err = d.readPatternLineStrict()
		} else {
			line, err = d.readPatternLine()
		}
		if err != nil {
			return dxf.WrapError(err, idx("pattern", i))
		}
		h.PatternLines = append(h.PatternLines, line)
	}
	return nil
}

// Mandatory fields of a pattern line record.
const (
	seenAngle uint8 = 1 << iota
	seenBaseX
	seenBaseY
	seenOffsetX
	seenOffsetY
	seenDashCount

	seenAll = seenAngle | seenBaseX | seenBaseY | seenOffsetX | seenOffsetY | seenDashCount
)

func fieldBit(code int) uint8 {
	switch code {
	case codeLineAngle:
		return seenAngle
	case codeLineBaseX:
		return seenBaseX
	case codeLineBaseY:
		return seenBaseY
	case codeLineOffsetX:
		return seenOffsetX
	case codeLineOffsetY:
		return seenOffsetY
	case codeDashCount:
		return seenDashCount
	}
	return 0
}

// readPatternLine accepts the six mandatory fields in any order, with dash
// lengths allowed as soon as the dash count is known. A repeated
// mandatory field or any other tag ends the record and is pushed back.
func (d *Decoder) readPatternLine() (PatternLine, error) {
	var line PatternLine
	var seen uint8
	dashes := -1
	closed, exhausted := false, false
	for seen != seenAll || len(line.DashLengths) != dashes {
		p, err := d.src.Next()
		if errors.Is(err, io.EOF) {
			exhausted = true
			break
		}
		if err != nil {
			return PatternLine{}, err
		}

		bit := fieldBit(p.Code)
		if bit == 0 && p.Code == codeDashLength && dashes > len(line.DashLengths) {
			v, err := p.Float64()
			if err != nil {
				return PatternLine{}, err
			}
			line.DashLengths = append(line.DashLengths, v)
			continue
		}
		if bit == 0 || seen&bit != 0 {
			if err := d.unread(p); err != nil {
				return PatternLine{}, err
			}
			closed = p.Code == dxf.CodeEntityType
			break
		}

		seen |= bit
		switch bit {
		case seenAngle:
			line.Angle, err = p.Float64()
		case seenBaseX:
			line.BasePoint.X, err = p.Float64()
		case seenBaseY:
			line.BasePoint.Y, err = p.Float64()
		case seenOffsetX:
			line.Offset.X, err = p.Float64()
		case seenOffsetY:
			line.Offset.Y, err = p.Float64()
		case seenDashCount:
			if dashes, err = countOf(p); err == nil {
				line.DashLengths = make([]float64, 0, capHint(dashes))
			}
		}
		if err != nil {
			return PatternLine{}, err
		}
	}

	if seen != seenAll {
		if closed {
			return PatternLine{}, dxf.ErrEntityClosed
		}
		return PatternLine{}, dxf.ErrUnexpectedEndOfInput
	}
	if len(line.DashLengths) != dashes {
		switch {
		case exhausted:
			return PatternLine{}, dxf.WrapError(dxf.ErrUnexpectedEndOfInput, "dashes")
		case closed:
			return PatternLine{}, dxf.WrapError(dxf.ErrEntityClosed, "dashes")
		}
		return PatternLine{}, dxf.WrapError(dxf.CountError{Wanted: dashes, Got: len(line.DashLengths)}, "dashes")
	}
	return line, nil
}

// readPatternLineStrict requires the fields in the fixed order the format
// documents.
func (d *Decoder) readPatternLineStrict() (PatternLine, error) {
	var line PatternLine
	var err error
	if line.Angle, err = d.src.ExpectFloat64(codeLineAngle); err != nil {
		return PatternLine{}, err
	}
	if line.BasePoint.X, line.BasePoint.Y, err = d.point(codeLineBaseX, codeLineBaseY); err != nil {
		return PatternLine{}, err
	}
	if line.Offset.X, line.Offset.Y, err = d.point(codeLineOffsetX, codeLineOffsetY); err != nil {
		return PatternLine{}, err
	}
	n, err := d.count(codeDashCount)
	if err != nil {
		return PatternLine{}, err
	}
	line.DashLengths = make([]float64, 0, capHint(n))
	for i := 0; i < n; i++ {
		v, err := d.src.ExpectFloat64(codeDashLength)
		if err != nil {
			return PatternLine{}, dxf.WrapError(err, idx("dash", i))
		}
		line.DashLengths = append(line.DashLengths, v)
	}
	return line, nil
}
