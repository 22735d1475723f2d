package core

import (
	"github.com/tinylib/msgp/msgp"
)

// MessagePack output is appended by hand with the msgp primitives. Field
// names match the json tags of the view types; empty optional fields are
// left out the same way omitempty leaves them out.

func appendFloats(b []byte, fs []float64) []byte {
	b = msgp.AppendArrayHeader(b, uint32(len(fs)))
	for _, f := range fs {
		b = msgp.AppendFloat64(b, f)
	}
	return b
}

func appendPoints(b []byte, ps [][]float64) []byte {
	b = msgp.AppendArrayHeader(b, uint32(len(ps)))
	for _, p := range ps {
		b = appendFloats(b, p)
	}
	return b
}

type mapBuilder struct {
	fields [][]byte
}

func (m *mapBuilder) add(key string, val []byte) {
	m.fields = append(m.fields, append(msgp.AppendString(nil, key), val...))
}

func (m *mapBuilder) appendTo(b []byte) []byte {
	b = msgp.AppendMapHeader(b, uint32(len(m.fields)))
	for _, f := range m.fields {
		b = append(b, f...)
	}
	return b
}

func appendHatchMsgp(b []byte, v *hatchView) []byte {
	var m mapBuilder
	if v.Handle != "" {
		m.add("handle", msgp.AppendString(nil, v.Handle))
	}
	if v.Layer != "" {
		m.add("layer", msgp.AppendString(nil, v.Layer))
	}
	if v.Pattern != "" {
		m.add("pattern", msgp.AppendString(nil, v.Pattern))
	}
	m.add("solid", msgp.AppendBool(nil, v.Solid))
	if v.Color != "" {
		m.add("color", msgp.AppendString(nil, v.Color))
	}
	bs := msgp.AppendArrayHeader(nil, uint32(len(v.Boundaries)))
	for i := range v.Boundaries {
		bs = appendBoundaryMsgp(bs, &v.Boundaries[i])
	}
	m.add("boundaries", bs)
	if len(v.PatternLines) > 0 {
		ls := msgp.AppendArrayHeader(nil, uint32(len(v.PatternLines)))
		for _, l := range v.PatternLines {
			var lm mapBuilder
			lm.add("angle", msgp.AppendFloat64(nil, l.Angle))
			lm.add("base", appendFloats(nil, l.Base))
			lm.add("offset", appendFloats(nil, l.Offset))
			lm.add("dashes", appendFloats(nil, l.Dashes))
			ls = lm.appendTo(ls)
		}
		m.add("pattern_lines", ls)
	}
	return m.appendTo(b)
}

func appendBoundaryMsgp(b []byte, v *boundaryView) []byte {
	var m mapBuilder
	m.add("type", msgp.AppendString(nil, v.Type))
	m.add("kind", msgp.AppendString(nil, v.Kind))
	if v.Closed {
		m.add("closed", msgp.AppendBool(nil, true))
	}
	if len(v.Vertices) > 0 {
		vs := msgp.AppendArrayHeader(nil, uint32(len(v.Vertices)))
		for _, vx := range v.Vertices {
			vs = appendFloats(vs, vx[:])
		}
		m.add("vertices", vs)
	}
	if len(v.Edges) > 0 {
		es := msgp.AppendArrayHeader(nil, uint32(len(v.Edges)))
		for i := range v.Edges {
			es = appendEdgeMsgp(es, &v.Edges[i])
		}
		m.add("edges", es)
	}
	if len(v.Sources) > 0 {
		ss := msgp.AppendArrayHeader(nil, uint32(len(v.Sources)))
		for _, s := range v.Sources {
			ss = msgp.AppendString(ss, s)
		}
		m.add("sources", ss)
	}
	return m.appendTo(b)
}

func appendEdgeMsgp(b []byte, v *edgeView) []byte {
	var m mapBuilder
	m.add("kind", msgp.AppendString(nil, v.Kind))
	optPoint := func(key string, p []float64) {
		if len(p) > 0 {
			m.add(key, appendFloats(nil, p))
		}
	}
	optFloat := func(key string, f float64) {
		if f != 0 {
			m.add(key, msgp.AppendFloat64(nil, f))
		}
	}
	optBool := func(key string, t bool) {
		if t {
			m.add(key, msgp.AppendBool(nil, true))
		}
	}
	optPoint("start", v.Start)
	optPoint("end", v.End)
	optPoint("center", v.Center)
	optPoint("major_axis", v.MajorAxis)
	optFloat("radius", v.Radius)
	optFloat("axis_ratio", v.AxisRatio)
	optFloat("start_angle", v.StartAngle)
	optFloat("end_angle", v.EndAngle)
	optBool("ccw", v.CCW)
	if v.Degree != 0 {
		m.add("degree", msgp.AppendInt16(nil, v.Degree))
	}
	optBool("rational", v.Rational)
	optBool("periodic", v.Periodic)
	if len(v.Knots) > 0 {
		m.add("knots", appendFloats(nil, v.Knots))
	}
	if len(v.Control) > 0 {
		m.add("control", appendPoints(nil, v.Control))
	}
	if len(v.Weights) > 0 {
		ws := msgp.AppendArrayHeader(nil, uint32(len(v.Weights)))
		for _, w := range v.Weights {
			if w == nil {
				ws = msgp.AppendNil(ws)
			} else {
				ws = msgp.AppendFloat64(ws, *w)
			}
		}
		m.add("weights", ws)
	}
	if len(v.Fit) > 0 {
		m.add("fit", appendPoints(nil, v.Fit))
	}
	optPoint("start_tangent", v.StartTangent)
	optPoint("end_tangent", v.EndTangent)
	return m.appendTo(b)
}
