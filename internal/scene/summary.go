package scene

// Summary describes one object for listings.
type Summary struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Dimensions string `json:"dimensions"`
	Splines    int    `json:"splines"`
	Points     int    `json:"points"`
	Active     bool   `json:"active,omitempty"`
	Selected   bool   `json:"selected,omitempty"`
	Exportable bool   `json:"exportable"`
	// Reason says why the object cannot be exported.
	Reason string `json:"reason,omitempty"`
}

// Summarize returns a summary of every object in file order.
func (s *Scene) Summarize() []Summary {
	out := make([]Summary, 0, len(s.Objects))
	for i := range s.Objects {
		obj := &s.Objects[i]
		sum := Summary{
			Name:       obj.Name,
			Type:       normalize(obj.Type, TypeCurve),
			Dimensions: normalize(obj.Dimensions, Dim2D),
			Splines:    len(obj.Splines),
			Points:     obj.PointCount(),
			Active:     obj.Name == s.Active,
			Selected:   obj.Selected,
			Exportable: obj.Exportable(),
		}
		switch {
		case !obj.IsCurve():
			sum.Reason = "not a curve"
			sum.Dimensions = ""
		case !obj.Is2D():
			sum.Reason = "not 2D"
		}
		out = append(out, sum)
	}
	return out
}
