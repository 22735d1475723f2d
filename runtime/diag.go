package dxf

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Diag renders pairs one per line as "code kind value", the way a DXF
// stream is usually inspected by eye. Strings are quoted.
func Diag(pairs []CodePair) string {
	var sb strings.Builder
	for _, p := range pairs {
		diagOne(&sb, p)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DiagSource drains up to limit pairs from src (all of them when limit is
// zero or less) and renders them with Diag. The error, if any, is the one
// that stopped the drain, other than the end of input.
func DiagSource(src Source, limit int) (string, error) {
	var pairs []CodePair
	for limit <= 0 || len(pairs) < limit {
		p, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Diag(pairs), err
		}
		pairs = append(pairs, p)
	}
	return Diag(pairs), nil
}

func diagOne(sb *strings.Builder, p CodePair) {
	code := strconv.Itoa(p.Code)
	for i := len(code); i < 4; i++ {
		sb.WriteByte(' ')
	}
	sb.WriteString(code)
	sb.WriteByte(' ')
	kind := p.Value.Kind.String()
	sb.WriteString(kind)
	for i := len(kind); i < 7; i++ {
		sb.WriteByte(' ')
	}
	sb.WriteByte(' ')
	switch p.Value.Kind {
	case StringKind:
		sb.WriteString(strconv.Quote(p.Value.s))
	case BoolKind:
		sb.WriteString(strconv.FormatBool(p.Value.i != 0))
	default:
		sb.WriteString(p.Value.String())
	}
}
