package svg

import (
	"strings"

	"github.com/gorewood/curve2svg/internal/geom"
	"github.com/gorewood/curve2svg/internal/scene"
)

// Path commands.
const (
	OpMove  = 'M'
	OpCubic = 'C'
	OpLine  = 'L'
	OpClose = 'Z'
)

// Point is a coordinate in SVG user space, already scaled and rounded.
type Point struct {
	X, Y float64
}

// Command is one path command with its coordinates.
type Command struct {
	Op     byte
	Points []Point
}

// Path is one <path> element.
type Path struct {
	ID          string
	Commands    []Command
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Data renders the path's d attribute. Pretty output separates commands and
// their arguments with spaces ("M 0,0 L 1,0 Z"); minified output drops the
// space around command letters ("M0,0L1,0Z").
func (p *Path) Data(precision int, minify bool) string {
	var b strings.Builder
	for i, cmd := range p.Commands {
		if i > 0 && !minify {
			b.WriteByte(' ')
		}
		b.WriteByte(cmd.Op)
		for j, pt := range cmd.Points {
			if j > 0 || !minify {
				b.WriteByte(' ')
			}
			b.WriteString(FormatCoord(pt.X, precision))
			b.WriteByte(',')
			b.WriteString(FormatCoord(pt.Y, precision))
		}
	}
	return b.String()
}

// projector maps object-space points into SVG user space.
type projector struct {
	world     geom.Mat4
	scale     float64
	precision int
}

func (pr projector) project(v geom.Vec3) Point {
	w := pr.world.Apply(v)
	return Point{
		X: round(w.X*pr.scale, pr.precision),
		Y: round(-w.Y*pr.scale, pr.precision),
	}
}

// splineCommands converts one spline to path commands.
func (pr projector) splineCommands(s *scene.Spline) []Command {
	switch s.Kind() {
	case scene.SplinePoly:
		return pr.polyCommands(s)
	case scene.SplineNURBS:
		return pr.nurbsCommands(s)
	default:
		return pr.bezierCommands(s)
	}
}

func (pr projector) bezierCommands(s *scene.Spline) []Command {
	pts := s.BezierPoints
	if len(pts) == 0 {
		return nil
	}

	cmds := make([]Command, 0, len(pts)+2)
	cmds = append(cmds, Command{Op: OpMove, Points: []Point{pr.project(pts[0].Position())}})
	for i := 1; i < len(pts); i++ {
		cmds = append(cmds, pr.cubic(&pts[i-1], &pts[i]))
	}
	if s.Cyclic {
		if len(pts) > 1 {
			cmds = append(cmds, pr.cubic(&pts[len(pts)-1], &pts[0]))
		}
		cmds = append(cmds, Command{Op: OpClose})
	}
	return cmds
}

// cubic builds the segment from prev to next: prev's outgoing handle,
// next's incoming handle, next's position.
func (pr projector) cubic(prev, next *scene.BezierPoint) Command {
	return Command{Op: OpCubic, Points: []Point{
		pr.project(prev.Right()),
		pr.project(next.Left()),
		pr.project(next.Position()),
	}}
}

func (pr projector) polyCommands(s *scene.Spline) []Command {
	pts := make([]geom.Vec3, len(s.Points))
	for i := range s.Points {
		pts[i], _ = s.PointAt(i)
	}
	return pr.polyline(pts, s.Cyclic)
}

func (pr projector) nurbsCommands(s *scene.Spline) []Command {
	curve := geom.NURBS{
		Points:   make([]geom.Vec3, len(s.Points)),
		Weights:  make([]float64, len(s.Points)),
		Order:    s.EffectiveOrder(),
		Cyclic:   s.Cyclic,
		Endpoint: s.Endpoint,
	}
	for i := range s.Points {
		curve.Points[i], curve.Weights[i] = s.PointAt(i)
	}
	return pr.polyline(curve.Sample(geom.SampleResolution(len(s.Points))), s.Cyclic)
}

func (pr projector) polyline(pts []geom.Vec3, cyclic bool) []Command {
	if len(pts) == 0 {
		return nil
	}
	cmds := make([]Command, 0, len(pts)+1)
	cmds = append(cmds, Command{Op: OpMove, Points: []Point{pr.project(pts[0])}})
	for _, p := range pts[1:] {
		cmds = append(cmds, Command{Op: OpLine, Points: []Point{pr.project(p)}})
	}
	if cyclic {
		cmds = append(cmds, Command{Op: OpClose})
	}
	return cmds
}
