package export

import (
	"fmt"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// WriteDXF exports the atlas layout as a DXF drawing. The atlas
// boundary goes on an ATLAS layer and every sprite rectangle on a
// SPRITES layer, so the file can be opened in any CAD tool for
// inspection or printed as a cutting guide. Y is flipped so the
// drawing reads the same way up as the composed image.
func WriteDXF(path string, layout model.AtlasLayout) error {
	if len(layout.Placements) == 0 {
		return fmt.Errorf("no placed sprites to export")
	}

	d := dxf.NewDrawing()

	d.AddLayer("ATLAS", dxfcolor.Red, table.LT_CONTINUOUS, true)
	drawRect(d, 0, 0, float64(layout.Width), float64(layout.Height), float64(layout.Height))

	d.AddLayer("SPRITES", dxfcolor.Green, table.LT_CONTINUOUS, true)
	for _, p := range layout.Placements {
		drawRect(d, float64(p.X), float64(p.Y), float64(p.Width), float64(p.Height), float64(layout.Height))
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF file: %w", err)
	}
	return nil
}

// drawRect adds the four edges of a rectangle as LINE entities,
// flipping Y against the atlas height so the DXF origin convention
// (Y up) matches the image convention (Y down).
func drawRect(d *drawing.Drawing, x, y, w, h, atlasHeight float64) {
	y0 := atlasHeight - y
	y1 := atlasHeight - (y + h)
	d.Line(x, y0, 0, x+w, y0, 0)
	d.Line(x+w, y0, 0, x+w, y1, 0)
	d.Line(x+w, y1, 0, x, y1, 0)
	d.Line(x, y1, 0, x, y0, 0)
}
