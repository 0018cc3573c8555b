package figure

import (
	"fmt"
	"image/color"
	"os"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/conway-lab/lifebench/pkg/table"
)

// Caption identifies the two strategies by the color channels renderPanel
// assigns them (plotutil colors 0 and 1).
const Caption = "Iteration time by cell count: multiprocessed (blue), singleprocessed (red)"

const (
	panelSize     = 5 * vg.Inch
	captionHeight = 0.6 * vg.Inch
)

// Figure is the composed output artifact: a grid of rendered panels plus one
// shared caption. Built once, exported once, not reused.
type Figure struct {
	grid    [][]*plot.Plot
	caption string
}

// Compose splits the table per panel spec, renders each panel, and arranges
// the panels into a grid (one panel fills the figure, more panels go two per
// row).
func Compose(specs []PanelSpec, m table.Matrix) (*Figure, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no panels to compose", table.ErrInvalidRange)
	}

	cols := 1
	if len(specs) > 1 {
		cols = 2
	}
	rows := (len(specs) + cols - 1) / cols

	grid := make([][]*plot.Plot, rows)
	for i := range grid {
		grid[i] = make([]*plot.Plot, cols)
	}

	for i, spec := range specs {
		multiTimes, singleTimes, cellCounts, err := m.Split(spec.PrefixWidth)
		if err != nil {
			return nil, err
		}

		p := plot.New()
		p.Title.Text = spec.Title
		if err := renderPanel(p, multiTimes, singleTimes, cellCounts); err != nil {
			return nil, fmt.Errorf("panel %q (width %d): %w", spec.Title, spec.PrefixWidth, err)
		}

		grid[i/cols][i%cols] = p
	}

	return &Figure{grid: grid, caption: Caption}, nil
}

// Rows reports the grid dimensions of the composed figure.
func (f *Figure) Rows() int { return len(f.grid) }
func (f *Figure) Cols() int { return len(f.grid[0]) }

// Save draws the caption strip and the aligned panel grid onto one canvas and
// writes it out as a PNG.
func (f *Figure) Save(path string) error {
	rows, cols := f.Rows(), f.Cols()
	width := vg.Length(cols) * panelSize
	height := vg.Length(rows)*panelSize + captionHeight

	img := vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)

	// Axis-less strip across the top for the shared caption.
	capCanvas := draw.Crop(dc, 0, 0, height-captionHeight, 0)
	capPlot := plot.New()
	capPlot.Title.Text = f.caption
	capPlot.HideAxes()
	capPlot.Draw(capCanvas)

	gridCanvas := draw.Crop(dc, 0, 0, 0, -captionHeight)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(f.grid, tiles, gridCanvas)
	for i := range f.grid {
		for j, p := range f.grid[i] {
			if p == nil {
				continue
			}
			p.Draw(canvases[i][j])
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(out); err != nil {
		return err
	}

	log.Infof("Saved %dx%d figure to %s", rows, cols, path)
	return nil
}
