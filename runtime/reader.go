package dxf

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// Reader provides a minimal slice-based tokenizer for ASCII DXF. Each call
// to Next consumes one code line and one value line.
type Reader struct {
	buf  []byte
	line int

	dec        *encoding.Decoder
	forceUTF8  bool
	wantVar    string // header variable whose value is expected next
	maxStrings int
}

// NewReaderBytes constructs a Reader over the provided buffer.
func NewReaderBytes(b []byte) *Reader {
	// Strip a UTF-8 byte order mark.
	b = bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))
	return &Reader{buf: b}
}

// NewReader reads all of r and constructs a Reader over it.
func NewReader(r io.Reader) (*Reader, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewReaderBytes(b), nil
}

// SetMaxStringLen configures an upper bound on the length of string
// values. A value of zero disables the limit.
func (r *Reader) SetMaxStringLen(max int) { r.maxStrings = max }

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int { return r.line }

// Remaining returns the unread portion of the underlying buffer.
func (r *Reader) Remaining() []byte { return r.buf }

func (r *Reader) readLine() (string, bool) {
	if len(r.buf) == 0 {
		return "", false
	}
	var l []byte
	if i := bytes.IndexByte(r.buf, '\n'); i >= 0 {
		l, r.buf = r.buf[:i], r.buf[i+1:]
	} else {
		l, r.buf = r.buf, nil
	}
	r.line++
	return string(bytes.TrimSuffix(l, []byte{'\r'})), true
}

// Next reads the next code pair. It returns io.EOF when the buffer is
// exhausted on a pair boundary and ErrUnexpectedEndOfInput when a code
// line has no value line. Comment pairs (999) are skipped.
func (r *Reader) Next() (CodePair, error) {
	for {
		p, err := r.next()
		if err != nil {
			return CodePair{}, err
		}
		if p.Code == CodeComment {
			continue
		}
		r.track(p)
		return p, nil
	}
}

func (r *Reader) next() (CodePair, error) {
	codeLine, ok := r.readLine()
	for ok && strings.TrimSpace(codeLine) == "" && len(r.buf) == 0 {
		// trailing blank line at end of file
		codeLine, ok = r.readLine()
	}
	if !ok {
		return CodePair{}, io.EOF
	}
	code, err := strconv.Atoi(strings.TrimSpace(codeLine))
	if err != nil {
		return CodePair{}, SyntaxError{Line: r.line, Text: codeLine, Msg: "invalid group code"}
	}
	valueLine, ok := r.readLine()
	if !ok {
		return CodePair{}, ErrUnexpectedEndOfInput
	}
	v, err := r.parseValue(code, valueLine)
	if err != nil {
		return CodePair{}, err
	}
	return CodePair{Code: code, Value: v}, nil
}

func (r *Reader) parseValue(code int, text string) (Value, error) {
	kind := KindOf(code)
	if kind == StringKind {
		s := strings.TrimRight(text, " \t")
		if r.maxStrings > 0 && len(s) > r.maxStrings {
			return Value{}, SyntaxError{Line: r.line, Text: s[:r.maxStrings], Msg: "string value too long"}
		}
		if r.dec != nil && !r.forceUTF8 {
			if d, err := r.dec.String(s); err == nil {
				s = d
			}
		}
		return Str(s), nil
	}
	t := strings.TrimSpace(text)
	switch kind {
	case Float64Kind:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return Value{}, SyntaxError{Line: r.line, Text: text, Msg: "invalid float for code " + strconv.Itoa(code)}
		}
		return Float(f), nil
	case Int16Kind:
		i, err := parseInt(t, 16)
		if err != nil {
			return Value{}, SyntaxError{Line: r.line, Text: text, Msg: "invalid int16 for code " + strconv.Itoa(code)}
		}
		return Short(int16(i)), nil
	case Int32Kind:
		i, err := parseInt(t, 32)
		if err != nil {
			return Value{}, SyntaxError{Line: r.line, Text: text, Msg: "invalid int32 for code " + strconv.Itoa(code)}
		}
		return Long(int32(i)), nil
	case Int64Kind:
		i, err := parseInt(t, 64)
		if err != nil {
			return Value{}, SyntaxError{Line: r.line, Text: text, Msg: "invalid int64 for code " + strconv.Itoa(code)}
		}
		return Huge(i), nil
	case BoolKind:
		i, err := parseInt(t, 16)
		if err != nil {
			return Value{}, SyntaxError{Line: r.line, Text: text, Msg: "invalid bool for code " + strconv.Itoa(code)}
		}
		return Bool(i != 0), nil
	}
	return Str(text), nil
}

// parseInt accepts the "1.0"-style integers some writers emit.
func parseInt(t string, bits int) (int64, error) {
	i, err := strconv.ParseInt(t, 10, bits)
	if err == nil {
		return i, nil
	}
	f, ferr := strconv.ParseFloat(t, 64)
	if ferr != nil || f != float64(int64(f)) {
		return 0, err
	}
	return strconv.ParseInt(strconv.FormatInt(int64(f), 10), 10, bits)
}

// track watches the header for variables that change how strings are
// decoded.
func (r *Reader) track(p CodePair) {
	if p.Code == CodeVariable {
		r.wantVar = p.Value.s
		return
	}
	switch r.wantVar {
	case "$ACADVER":
		// AC1021 (R2007) and later are always UTF-8.
		if p.Value.Kind == StringKind && p.Value.s >= "AC1021" {
			r.forceUTF8 = true
		}
	case "$DWGCODEPAGE":
		if p.Value.Kind == StringKind {
			_ = r.SetCodePage(p.Value.s)
		}
	}
	r.wantVar = ""
}
