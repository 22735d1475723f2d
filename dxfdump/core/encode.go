package core

import (
	"encoding/json"
	"fmt"
	"io"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/tinylib/msgp/msgp"
	"gopkg.in/yaml.v3"

	"github.com/synadia-labs/dxf.go/hatch"
	dxf "github.com/synadia-labs/dxf.go/runtime"
)

type encodeFunc func(w io.Writer, hs []*hatch.Hatch) error

func encoderFor(format string) (encodeFunc, error) {
	switch format {
	case "", "json":
		return encodeJSON, nil
	case "yaml":
		return encodeYAML, nil
	case "cbor":
		return encodeCBOR, nil
	case "msgpack":
		return encodeMsgpack, nil
	case "pairs":
		return encodePairs, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

func views(hs []*hatch.Hatch) []hatchView {
	out := make([]hatchView, 0, len(hs))
	for _, h := range hs {
		out = append(out, viewOf(h))
	}
	return out
}

func encodeJSON(w io.Writer, hs []*hatch.Hatch) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views(hs))
}

func encodeYAML(w io.Writer, hs []*hatch.Hatch) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(views(hs)); err != nil {
		return err
	}
	return enc.Close()
}

func encodeCBOR(w io.Writer, hs []*hatch.Hatch) error {
	b, err := fxcbor.Marshal(views(hs))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func encodeMsgpack(w io.Writer, hs []*hatch.Hatch) error {
	vs := views(hs)
	b := msgp.AppendArrayHeader(nil, uint32(len(vs)))
	for i := range vs {
		b = appendHatchMsgp(b, &vs[i])
	}
	_, err := w.Write(b)
	return err
}

// encodePairs prints the boundary and pattern pairs of each hatch as they
// would be re-encoded, one pair per line.
func encodePairs(w io.Writer, hs []*hatch.Hatch) error {
	for _, h := range hs {
		if _, err := fmt.Fprintf(w, "HATCH %s\n%s", h.Handle, dxf.Diag(h.CodePairs())); err != nil {
			return err
		}
	}
	return nil
}
