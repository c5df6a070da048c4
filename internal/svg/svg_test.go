package svg

import (
	"bytes"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/gorewood/curve2svg/internal/scene"
)

// loop is a closed two-point Bezier spline at (0,0) and (1,0) with handles
// on their control points.
func loop() *scene.Object {
	return &scene.Object{
		Name: "Loop",
		Type: scene.TypeCurve,
		Splines: []scene.Spline{{
			Type:   scene.SplineBezier,
			Cyclic: true,
			BezierPoints: []scene.BezierPoint{
				{Co: []float64{0, 0}},
				{Co: []float64{1, 0}},
			},
		}},
	}
}

func wave() *scene.Object {
	return &scene.Object{
		Name: "Wave",
		Splines: []scene.Spline{
			{BezierPoints: []scene.BezierPoint{
				{Co: []float64{0, 0}, HandleLeft: []float64{-0.25, -0.5}, HandleRight: []float64{0.25, 0.5}},
				{Co: []float64{1.3, 0.7}, HandleLeft: []float64{1.05, 0.2}, HandleRight: []float64{1.55, 1.2}},
				{Co: []float64{2.1, -0.4}, HandleLeft: []float64{1.9, 0}, HandleRight: []float64{2.3, -0.8}},
			}},
			{Type: scene.SplinePoly, Cyclic: true, Points: [][]float64{{0, 0}, {0.5, 1.25}, {1, 0}}},
			{Type: scene.SplineNURBS, Points: [][]float64{{0, 0}, {1, 1}, {2, 0}, {3, 1}}},
		},
	}
}

func opts(scale float64, precision int, minify bool) Options {
	o := DefaultOptions()
	o.Scale = scale
	o.Precision = precision
	o.Minify = minify
	return o
}

func TestBuild_ClosedTwoPointSpline(t *testing.T) {
	doc, err := Build(loop(), opts(100, 0, true))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(doc.Paths) != 1 {
		t.Fatalf("len(Paths) = %d, want 1", len(doc.Paths))
	}
	want := "M0,0C0,0 100,0 100,0C100,0 0,0 0,0Z"
	if got := doc.Paths[0].Data(doc.Precision, doc.Minify); got != want {
		t.Errorf("d = %q, want %q", got, want)
	}
}

func TestDocument_PrettyGolden(t *testing.T) {
	doc, err := Build(loop(), opts(100, 0, false))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" version="1.1" x="0px" y="0px" width="100.0px" height="0.0px" viewBox="0.0 0.0 100.0 0.0" xml:space="preserve">
  <!-- Generated by curve2svg - Curve to SVG Exporter -->
  <g id="curves">
    <path id="Loop" d="M 0,0 C 0,0 100,0 100,0 C 100,0 0,0 0,0 Z" fill="none" stroke="#000000" stroke-width="1.00"/>
  </g>
</svg>
`
	if got := doc.String(); got != want {
		t.Errorf("pretty output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDocument_MinifiedGolden(t *testing.T) {
	doc, err := Build(loop(), opts(100, 0, true))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" version="1.1" x="0px" y="0px" width="100.0px" height="0.0px" viewBox="0.0 0.0 100.0 0.0" xml:space="preserve">` +
		`<!-- Generated by curve2svg - Curve to SVG Exporter -->` +
		`<g id="curves">` +
		`<path id="Loop" d="M0,0C0,0 100,0 100,0C100,0 0,0 0,0Z" fill="none" stroke="#000000" stroke-width="1.00"/>` +
		`</g></svg>`
	if got := doc.String(); got != want {
		t.Errorf("minified output mismatch\ngot:  %s\nwant: %s", got, want)
	}
}

func TestBuild_OnePathPerSpline(t *testing.T) {
	for _, minify := range []bool{false, true} {
		doc, err := Build(wave(), opts(100, 3, minify))
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if len(doc.Paths) != 3 {
			t.Errorf("len(Paths) = %d, want 3", len(doc.Paths))
		}
		if got := strings.Count(doc.String(), "<path "); got != 3 {
			t.Errorf("minify=%v: %d <path> elements, want 3", minify, got)
		}
	}
}

var coordRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

func coords(t *testing.T, doc *Document) []float64 {
	t.Helper()
	var out []float64
	for i := range doc.Paths {
		for _, s := range coordRe.FindAllString(doc.Paths[i].Data(doc.Precision, false), -1) {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				t.Fatalf("parsing %q: %v", s, err)
			}
			out = append(out, v)
		}
	}
	return out
}

func TestBuild_ScaleIsLinear(t *testing.T) {
	single, err := Build(wave(), opts(10, 3, false))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	double, err := Build(wave(), opts(20, 3, false))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	a, b := coords(t, single), coords(t, double)
	if len(a) != len(b) || len(a) == 0 {
		t.Fatalf("coordinate counts differ: %d vs %d", len(a), len(b))
	}
	// Each side is rounded to 3 decimals; doubling the coarser one widens
	// its error to 0.001.
	const tolerance = 0.0016
	for i := range a {
		if diff := b[i] - 2*a[i]; diff > tolerance || diff < -tolerance {
			t.Errorf("coordinate %d: %v at scale 20, %v at scale 10", i, b[i], a[i])
		}
	}
}

func TestBuild_PrecisionDigits(t *testing.T) {
	for _, precision := range []int{0, 1, 3, 6} {
		doc, err := Build(wave(), opts(37.5, precision, false))
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		var pattern *regexp.Regexp
		if precision == 0 {
			pattern = regexp.MustCompile(`^-?\d+$`)
		} else {
			pattern = regexp.MustCompile(`^-?\d+\.\d{` + strconv.Itoa(precision) + `}$`)
		}
		for i := range doc.Paths {
			d := doc.Paths[i].Data(precision, false)
			for _, field := range strings.Fields(d) {
				if len(field) == 1 {
					continue // command letter
				}
				for _, c := range strings.Split(field, ",") {
					if !pattern.MatchString(c) {
						t.Errorf("precision %d: coordinate %q in %q", precision, c, d)
					}
				}
			}
		}
	}
}

func TestDocument_MinifyHasNoNewlines(t *testing.T) {
	doc, err := Build(wave(), opts(100, 2, true))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if out := doc.String(); strings.Contains(out, "\n") {
		t.Errorf("minified output contains newline: %q", out)
	}
}

func TestDocument_PrettyIsIndented(t *testing.T) {
	doc, err := Build(wave(), opts(100, 2, false))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	out := doc.String()
	for _, want := range []string{"\n<svg ", "\n  <g id=\"curves\">\n", "\n    <path id=\"Wave-1\"", "\n  </g>\n</svg>\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestDocument_WriteTo(t *testing.T) {
	doc, err := Build(loop(), DefaultOptions())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if int(n) != buf.Len() || buf.String() != doc.String() {
		t.Errorf("WriteTo wrote %d bytes, buffer has %d", n, buf.Len())
	}
}

func TestBuild_RejectsUnsupported(t *testing.T) {
	threeD := loop()
	threeD.Dimensions = scene.Dim3D
	mesh := &scene.Object{Name: "Cube", Type: scene.TypeMesh}

	tests := []struct {
		name    string
		obj     *scene.Object
		wantMsg string
	}{
		{name: "3D curve", obj: threeD, wantMsg: "curve is 3D"},
		{name: "mesh", obj: mesh, wantMsg: "not a curve"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Build(tt.obj, DefaultOptions())
			if doc != nil {
				t.Error("rejected object should not produce a document")
			}
			if !errors.Is(err, ErrUnsupportedInput) {
				t.Fatalf("err = %v, want ErrUnsupportedInput", err)
			}
			var unsupported *UnsupportedError
			if !errors.As(err, &unsupported) || unsupported.Object != tt.obj.Name {
				t.Errorf("err = %#v, want UnsupportedError for %q", err, tt.obj.Name)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %q, want to contain %q", err, tt.wantMsg)
			}
		})
	}

	if _, err := Build(nil, DefaultOptions()); err == nil {
		t.Error("Build(nil) should fail")
	}
}

func TestBuild_SplineKinds(t *testing.T) {
	doc, err := Build(wave(), opts(10, 1, false))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	bezier := doc.Paths[0].Data(1, false)
	if want := "M 0.0,0.0 C 2.5,-5.0 10.5,-2.0 13.0,-7.0 C 15.5,-12.0 19.0,0.0 21.0,4.0"; bezier != want {
		t.Errorf("bezier d = %q, want %q", bezier, want)
	}

	poly := doc.Paths[1].Data(1, false)
	if want := "M 0.0,0.0 L 5.0,-12.5 L 10.0,0.0 Z"; poly != want {
		t.Errorf("poly d = %q, want %q", poly, want)
	}

	nurbs := doc.Paths[2]
	if nurbs.Commands[0].Op != OpMove {
		t.Errorf("nurbs path should start with M, got %c", nurbs.Commands[0].Op)
	}
	// max(4*8, 32) segments give 33 samples.
	if got := len(nurbs.Commands); got != 33 {
		t.Errorf("nurbs commands = %d, want 33", got)
	}
	for _, cmd := range nurbs.Commands[1:] {
		if cmd.Op != OpLine {
			t.Fatalf("nurbs path should continue with L, got %c", cmd.Op)
		}
	}
}

func TestBuild_OpenBezierHasNoClose(t *testing.T) {
	obj := loop()
	obj.Splines[0].Cyclic = false
	doc, err := Build(obj, opts(100, 0, true))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := doc.Paths[0].Data(0, true); got != "M0,0C0,0 100,0 100,0" {
		t.Errorf("d = %q", got)
	}
}

func TestBuild_SinglePointCyclic(t *testing.T) {
	obj := &scene.Object{Name: "Dot", Splines: []scene.Spline{{
		Cyclic:       true,
		BezierPoints: []scene.BezierPoint{{Co: []float64{0.5, 0.5}}},
	}}}
	doc, err := Build(obj, opts(2, 0, true))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := doc.Paths[0].Data(0, true); got != "M1,-1Z" {
		t.Errorf("d = %q, want M1,-1Z", got)
	}
}

func TestBuild_WorldMatrix(t *testing.T) {
	obj := loop()
	obj.Splines[0].Cyclic = false
	obj.Matrix = [][]float64{
		{2, 0, 0, 1},
		{0, 2, 0, 1},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	doc, err := Build(obj, opts(10, 0, true))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := doc.Paths[0].Data(0, true); got != "M10,-10C10,-10 30,-10 30,-10" {
		t.Errorf("d = %q", got)
	}
}

func TestBuild_ViewBoxAndSize(t *testing.T) {
	obj := &scene.Object{Name: "Box", Splines: []scene.Spline{{
		Type:   scene.SplinePoly,
		Cyclic: true,
		Points: [][]float64{{0, 0}, {2, 0}, {2, 1}, {0, 1}},
	}}}
	doc, err := Build(obj, opts(100, 3, false))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := ViewBox{X: 0, Y: -100, Width: 200, Height: 100}
	if doc.ViewBox != want {
		t.Errorf("ViewBox = %+v, want %+v", doc.ViewBox, want)
	}
	out := doc.String()
	for _, s := range []string{`width="200.0px"`, `height="100.0px"`, `viewBox="0.0 -100.0 200.0 100.0"`} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %s", s)
		}
	}
}

func TestBuild_StrokeWidth(t *testing.T) {
	tests := []struct {
		scale float64
		want  string
	}{
		{scale: 100, want: `stroke-width="1.00"`},
		{scale: 1, want: `stroke-width="2.00"`},
		{scale: 0.5, want: `stroke-width="4.00"`},
		{scale: 0.1, want: `stroke-width="20.00"`},
	}
	for _, tt := range tests {
		doc, err := Build(loop(), opts(tt.scale, 2, true))
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if out := doc.String(); !strings.Contains(out, tt.want) {
			t.Errorf("scale %g: output missing %s", tt.scale, tt.want)
		}
	}
}

func TestBuild_Fills(t *testing.T) {
	colored := loop()
	colored.Materials = []scene.Material{{Name: "Red", DiffuseColor: []float64{1, 0, 0, 1}}}

	tests := []struct {
		name       string
		obj        *scene.Object
		fills      bool
		wantFill   string
		wantStroke string
	}{
		{name: "material with fills", obj: colored, fills: true, wantFill: "#ff0000", wantStroke: "#ff0000"},
		{name: "material without fills", obj: colored, fills: false, wantFill: "none", wantStroke: "#000000"},
		{name: "no material", obj: loop(), fills: true, wantFill: "none", wantStroke: "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			o.IncludeFills = tt.fills
			doc, err := Build(tt.obj, o)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			p := doc.Paths[0]
			if p.Fill != tt.wantFill || p.Stroke != tt.wantStroke {
				t.Errorf("fill/stroke = %s/%s, want %s/%s", p.Fill, p.Stroke, tt.wantFill, tt.wantStroke)
			}
		})
	}
}

func TestBuild_PathIDs(t *testing.T) {
	doc, err := Build(wave(), DefaultOptions())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i, want := range []string{"Wave-1", "Wave-2", "Wave-3"} {
		if doc.Paths[i].ID != want {
			t.Errorf("Paths[%d].ID = %q, want %q", i, doc.Paths[i].ID, want)
		}
	}
}

func TestBuild_NoSplines(t *testing.T) {
	doc, err := Build(&scene.Object{Name: "Empty"}, opts(100, 3, true))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	out := doc.String()
	if !strings.Contains(out, `<g id="curves"/>`) {
		t.Errorf("empty object should produce an empty group: %s", out)
	}
	if !strings.Contains(out, `viewBox="0.0 0.0 0.0 0.0"`) {
		t.Errorf("empty object should have an empty viewBox: %s", out)
	}
}

func TestDocument_EscapesAttributes(t *testing.T) {
	obj := loop()
	obj.Name = `a"<b&c`
	doc, err := Build(obj, DefaultOptions())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if out := doc.String(); !strings.Contains(out, `id="a&#34;&lt;b&amp;c"`) {
		t.Errorf("id not escaped: %s", out)
	}
}

func TestDocument_GeneratorComment(t *testing.T) {
	o := DefaultOptions()
	o.Generator = "curve2svg v1.0.0 --dev"
	doc, err := Build(loop(), o)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	out := doc.String()
	if !strings.Contains(out, "<!-- Generated by curve2svg v1.0.0 -dev - Curve to SVG Exporter -->") {
		t.Errorf("unexpected comment in: %s", out)
	}
}

func TestBuild_AutoScale(t *testing.T) {
	tiny := &scene.Object{Name: "Tiny", Splines: []scene.Spline{{
		Type:   scene.SplinePoly,
		Points: [][]float64{{0, 0}, {0.01, 0.005}},
	}}}

	o := DefaultOptions()
	o.AutoScale = true
	doc, err := Build(tiny, o)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if math.Abs(doc.Scale-50000) > 1e-6 {
		t.Errorf("Scale = %v, want 50000", doc.Scale)
	}

	o.AutoScale = false
	doc, err = Build(tiny, o)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if doc.Scale != DefaultScale {
		t.Errorf("Scale without auto-scale = %v, want %v", doc.Scale, DefaultScale)
	}

	reasonable := wave()
	o.AutoScale = true
	doc, err = Build(reasonable, o)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if doc.Scale != DefaultScale {
		t.Errorf("auto-scale changed a reasonably sized drawing: %v", doc.Scale)
	}
}

func TestOptions_Normalize(t *testing.T) {
	tests := []struct {
		name          string
		in            Options
		wantScale     float64
		wantPrecision int
		wantNotes     int
	}{
		{name: "in range", in: opts(100, 3, false), wantScale: 100, wantPrecision: 3},
		{name: "scale too small", in: opts(0.01, 3, false), wantScale: MinScale, wantPrecision: 3, wantNotes: 1},
		{name: "scale too large", in: opts(5000, 3, false), wantScale: MaxScale, wantPrecision: 3, wantNotes: 1},
		{name: "negative precision", in: opts(1, -1, false), wantScale: 1, wantPrecision: 0, wantNotes: 1},
		{name: "both out of range", in: opts(0, 20, false), wantScale: MinScale, wantPrecision: MaxPrecision, wantNotes: 2},
		{name: "NaN scale", in: opts(math.NaN(), 3, false), wantScale: DefaultScale, wantPrecision: 3, wantNotes: 1},
		{name: "infinite scale", in: opts(math.Inf(1), 3, false), wantScale: DefaultScale, wantPrecision: 3, wantNotes: 1},
		{name: "negative infinite scale", in: opts(math.Inf(-1), 3, false), wantScale: DefaultScale, wantPrecision: 3, wantNotes: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, notes := tt.in.Normalize()
			if got.Scale != tt.wantScale || got.Precision != tt.wantPrecision {
				t.Errorf("Normalize() = scale %v precision %d, want %v %d", got.Scale, got.Precision, tt.wantScale, tt.wantPrecision)
			}
			if len(notes) != tt.wantNotes {
				t.Errorf("notes = %v, want %d", notes, tt.wantNotes)
			}
		})
	}
}

func TestBuild_NaNScaleFallsBack(t *testing.T) {
	o, notes := opts(math.NaN(), 0, true).Normalize()
	if len(notes) != 1 || !strings.Contains(notes[0], "not a finite number") {
		t.Errorf("notes = %v", notes)
	}
	doc, err := Build(loop(), o)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	out := doc.String()
	if strings.Contains(out, "NaN") || strings.Contains(out, "Inf") {
		t.Errorf("output contains non-finite values: %s", out)
	}
	if got := doc.Paths[0].Data(0, true); got != "M0,0C0,0 100,0 100,0C100,0 0,0 0,0Z" {
		t.Errorf("d = %q", got)
	}
}

func TestRound_MatchesFormatCoord(t *testing.T) {
	for _, v := range []float64{987654.3210987654, -543210.0123456789, 1e6 / 3, 0.125, -0.0000001} {
		for _, precision := range []int{0, 3, MaxPrecision} {
			r := round(v, precision)
			if got, want := FormatCoord(r, precision), FormatCoord(v, precision); got != want {
				t.Errorf("round(%v, %d) = %v writes %q, want %q", v, precision, r, got, want)
			}
			if r == 0 && math.Signbit(r) {
				t.Errorf("round(%v, %d) is negative zero", v, precision)
			}
		}
	}
}

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{v: 0, precision: 0, want: "0"},
		{v: 0, precision: 3, want: "0.000"},
		{v: -0.0001, precision: 3, want: "0.000"},
		{v: -0.25, precision: 2, want: "-0.25"},
		{v: 100, precision: 1, want: "100.0"},
		{v: 1.23456, precision: 4, want: "1.2346"},
		{v: -12.5, precision: 0, want: "-12"},
	}
	for _, tt := range tests {
		if got := FormatCoord(tt.v, tt.precision); got != tt.want {
			t.Errorf("FormatCoord(%v, %d) = %q, want %q", tt.v, tt.precision, got, tt.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		in   []float64
		want string
	}{
		{in: []float64{1, 0, 0, 1}, want: "#ff0000"},
		{in: []float64{0, 1, 0}, want: "#00ff00"},
		{in: []float64{0.5, 0.5, 0.5, 0.2}, want: "#bcbcbc"},
		{in: []float64{0.001, -1, 2}, want: "#0300ff"},
		{in: []float64{1}, want: "#ff0000"},
	}
	for _, tt := range tests {
		if got := ColorHex(tt.in); got != tt.want {
			t.Errorf("ColorHex(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
