package render

import (
	"github.com/lixenwraith/pewpewpew/component"
	"github.com/lixenwraith/pewpewpew/constant"
)

// DrawFrame clears the canvas and paints every UFO in list order
func DrawFrame(c Canvas, ufos []*component.Ufo) {
	c.Clear()
	for _, u := range ufos {
		DrawUfo(c, u)
	}
}

// DrawUfo paints the body, then the after-images oldest first
func DrawUfo(c Canvas, u *component.Ufo) {
	if u.IsPlayer() {
		c.FillPolygon(u.Pos, constant.PentagonSides, constant.BodyRadius, constant.PentagonRotation, u.Color)
	} else {
		c.FillCircle(u.Pos, constant.BodyRadius, u.Color)
	}

	u.Trail.Each(func(p component.TrailPoint) {
		c.FillCircle(p.Pos, constant.TrailRadius, p.Color)
	})
}
