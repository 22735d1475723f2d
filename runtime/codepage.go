package dxf

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var codePages = map[string]*charmap.Charmap{
	"ANSI_874":  charmap.Windows874,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"DOS437":    charmap.CodePage437,
	"DOS850":    charmap.CodePage850,
	"DOS852":    charmap.CodePage852,
	"DOS855":    charmap.CodePage855,
	"DOS860":    charmap.CodePage860,
	"DOS863":    charmap.CodePage863,
	"DOS865":    charmap.CodePage865,
	"DOS866":    charmap.CodePage866,
	"ISO8859-1": charmap.ISO8859_1,
	"ISO8859-2": charmap.ISO8859_2,
	"ISO8859-5": charmap.ISO8859_5,
	"ISO8859-7": charmap.ISO8859_7,
	"ISO8859-9": charmap.ISO8859_9,
}

// SetCodePage selects the code page used to decode string values, by its
// $DWGCODEPAGE name (e.g. "ANSI_1252"). An empty name or "UTF8" restores
// pass-through decoding.
func (r *Reader) SetCodePage(name string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	switch name {
	case "", "UTF8", "UTF-8":
		r.dec = nil
		return nil
	}
	cm, ok := codePages[name]
	if !ok {
		Logger().Debug("unknown code page, strings left undecoded", "codepage", name)
		return fmt.Errorf("dxf: unknown code page %q", name)
	}
	r.dec = cm.NewDecoder()
	return nil
}
