package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/pewpewpew/core"
	"github.com/lixenwraith/pewpewpew/render"
)

// whiteSubImage is the 1x1 texture polygon triangles sample from, created on first draw
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// imageCanvas draws onto the ebiten screen image for one Draw call
type imageCanvas struct {
	dst *ebiten.Image
}

func (c *imageCanvas) Clear() {
	c.dst.Fill(color.Black)
}

func (c *imageCanvas) FillCircle(center core.Vec2, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), col.NRGBA(), true)
}

func (c *imageCanvas) FillPolygon(center core.Vec2, sides int, radius, rotation float64, col core.Color) {
	verts := render.PolygonVertices(center, sides, radius, rotation)

	var path vector.Path
	path.MoveTo(float32(verts[0].X), float32(verts[0].Y))
	for _, v := range verts[1:] {
		path.LineTo(float32(v.X), float32(v.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := col.R, col.G, col.B, col.A
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r * a)
		vs[i].ColorG = float32(g * a)
		vs[i].ColorB = float32(b * a)
		vs[i].ColorA = float32(a)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(vs, is, whiteTexture(), op)
}
