// Package charts renders the statistics charts as PNG images: the
// cumulative score line chart, the win/loss bar chart, and the average
// score bar chart.
package charts

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"scorekeeper/models"
)

// ChartStyle defines the shared look of the generated charts
type ChartStyle struct {
	Width   int
	Height  int
	Title   [3]float64
	Label   [3]float64
	Grid    [4]float64
	WinBar  [3]float64
	LossBar [3]float64
}

// palette is the per-player series palette, in the same order players
// appear on the roster.
var palette = [][3]float64{
	{0.00, 0.83, 1.00}, // cyan
	{1.00, 0.55, 0.00}, // orange
	{0.00, 1.00, 0.53}, // green
	{1.00, 0.28, 0.34}, // red
	{0.66, 0.33, 0.97}, // purple
	{0.95, 0.77, 0.06}, // yellow
}

// Generator renders chart images with a fixed style
type Generator struct {
	style ChartStyle
}

// NewGenerator creates a chart generator with the default style
func NewGenerator() *Generator {
	return &Generator{
		style: ChartStyle{
			Width:   800,
			Height:  480,
			Title:   [3]float64{0.20, 0.20, 0.30},
			Label:   [3]float64{0.29, 0.29, 0.42},
			Grid:    [4]float64{0, 0, 0, 0.08},
			WinBar:  [3]float64{1.00, 0.55, 0.00},
			LossBar: [3]float64{0.00, 0.83, 1.00},
		},
	}
}

// plot is the drawable area between the axes.
type plot struct {
	left, right, top, bottom float64
}

func (p plot) width() float64  { return p.right - p.left }
func (p plot) height() float64 { return p.bottom - p.top }

// CumulativeLine draws one running-total line per player across the
// year's games.
func (g *Generator) CumulativeLine(players []string, cumulative map[string][]int, gameCount int) ([]byte, error) {
	dc, p, err := g.newCanvas("Cumulative scores")
	if err != nil {
		return nil, err
	}

	maxV := 0
	for _, series := range cumulative {
		for _, v := range series {
			if v > maxV {
				maxV = v
			}
		}
	}
	scale := niceCeil(maxV)
	g.drawGridAndScale(dc, p, scale)

	x := func(i int) float64 {
		if gameCount <= 1 {
			return p.left + p.width()/2
		}
		return p.left + float64(i)*p.width()/float64(gameCount-1)
	}
	y := func(v int) float64 {
		return p.bottom - float64(v)/float64(scale)*p.height()
	}

	// Label every game along the x axis, thinning when there are many.
	step := 1
	if gameCount > 12 {
		step = (gameCount + 11) / 12
	}
	dc.SetRGB(g.style.Label[0], g.style.Label[1], g.style.Label[2])
	for i := 0; i < gameCount; i += step {
		dc.DrawStringAnchored(fmt.Sprintf("G%d", i+1), x(i), p.bottom+14, 0.5, 0.5)
	}

	for idx, player := range players {
		series := cumulative[player]
		c := palette[idx%len(palette)]
		dc.SetRGB(c[0], c[1], c[2])
		dc.SetLineWidth(2)
		for i := 1; i < len(series); i++ {
			dc.DrawLine(x(i-1), y(series[i-1]), x(i), y(series[i]))
		}
		dc.Stroke()
		for i := 0; i < len(series); i++ {
			dc.DrawCircle(x(i), y(series[i]), 3)
			dc.Fill()
		}
	}

	g.drawLegend(dc, p, legendEntries(players))
	return encode(dc)
}

// WinLossBars draws paired win and loss bars per player.
func (g *Generator) WinLossBars(players []string, counts map[string]models.WinLoss) ([]byte, error) {
	dc, p, err := g.newCanvas("Wins and losses")
	if err != nil {
		return nil, err
	}

	maxV := 0
	for _, wl := range counts {
		if wl.Wins > maxV {
			maxV = wl.Wins
		}
		if wl.Losses > maxV {
			maxV = wl.Losses
		}
	}
	scale := niceCeil(maxV)
	g.drawGridAndScale(dc, p, scale)

	group := p.width() / float64(len(players))
	barW := group * 0.3
	height := func(v int) float64 {
		return float64(v) / float64(scale) * p.height()
	}

	for i, player := range players {
		center := p.left + (float64(i)+0.5)*group
		wl := counts[player]

		dc.SetRGBA(g.style.WinBar[0], g.style.WinBar[1], g.style.WinBar[2], 0.8)
		dc.DrawRectangle(center-barW, p.bottom-height(wl.Wins), barW, height(wl.Wins))
		dc.Fill()

		dc.SetRGBA(g.style.LossBar[0], g.style.LossBar[1], g.style.LossBar[2], 0.8)
		dc.DrawRectangle(center, p.bottom-height(wl.Losses), barW, height(wl.Losses))
		dc.Fill()

		dc.SetRGB(g.style.Label[0], g.style.Label[1], g.style.Label[2])
		dc.DrawStringAnchored(player, center, p.bottom+14, 0.5, 0.5)
	}

	g.drawLegend(dc, p, []legendEntry{
		{label: "wins", color: g.style.WinBar},
		{label: "losses", color: g.style.LossBar},
	})
	return encode(dc)
}

// AverageBars draws one average-score bar per player.
func (g *Generator) AverageBars(players []string, averages map[string]int) ([]byte, error) {
	dc, p, err := g.newCanvas("Average score")
	if err != nil {
		return nil, err
	}

	maxV := 0
	for _, v := range averages {
		if v > maxV {
			maxV = v
		}
	}
	scale := niceCeil(maxV)
	g.drawGridAndScale(dc, p, scale)

	group := p.width() / float64(len(players))
	barW := group * 0.5

	for i, player := range players {
		center := p.left + (float64(i)+0.5)*group
		h := float64(averages[player]) / float64(scale) * p.height()
		c := palette[i%len(palette)]

		dc.SetRGBA(c[0], c[1], c[2], 0.5)
		dc.DrawRectangle(center-barW/2, p.bottom-h, barW, h)
		dc.Fill()
		dc.SetRGB(c[0], c[1], c[2])
		dc.SetLineWidth(2)
		dc.DrawRectangle(center-barW/2, p.bottom-h, barW, h)
		dc.Stroke()

		dc.SetRGB(g.style.Label[0], g.style.Label[1], g.style.Label[2])
		dc.DrawStringAnchored(player, center, p.bottom+14, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%d", averages[player]), center, p.bottom-h-10, 0.5, 0.5)
	}

	return encode(dc)
}

func (g *Generator) newCanvas(title string) (*gg.Context, plot, error) {
	dc := gg.NewContext(g.style.Width, g.style.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	titleFace, err := loadFont(gobold.TTF, 16)
	if err != nil {
		return nil, plot{}, fmt.Errorf("failed to load title font: %w", err)
	}
	dc.SetFontFace(titleFace)
	dc.SetRGB(g.style.Title[0], g.style.Title[1], g.style.Title[2])
	dc.DrawString(title, 20, 28)

	labelFace, err := loadFont(gomono.TTF, 12)
	if err != nil {
		return nil, plot{}, fmt.Errorf("failed to load label font: %w", err)
	}
	dc.SetFontFace(labelFace)

	p := plot{
		left:   70,
		right:  float64(g.style.Width) - 24,
		top:    48,
		bottom: float64(g.style.Height) - 48,
	}
	return dc, p, nil
}

// drawGridAndScale draws horizontal gridlines with y-axis labels for a
// 0..scale range split into five divisions.
func (g *Generator) drawGridAndScale(dc *gg.Context, p plot, scale int) {
	const divisions = 5
	for i := 0; i <= divisions; i++ {
		v := scale * i / divisions
		y := p.bottom - float64(i)*p.height()/divisions

		dc.SetRGBA(g.style.Grid[0], g.style.Grid[1], g.style.Grid[2], g.style.Grid[3])
		dc.SetLineWidth(1)
		dc.DrawLine(p.left, y, p.right, y)
		dc.Stroke()

		dc.SetRGB(g.style.Label[0], g.style.Label[1], g.style.Label[2])
		dc.DrawStringAnchored(fmt.Sprintf("%d", v), p.left-8, y, 1, 0.5)
	}
}

type legendEntry struct {
	label string
	color [3]float64
}

func legendEntries(players []string) []legendEntry {
	entries := make([]legendEntry, len(players))
	for i, p := range players {
		entries[i] = legendEntry{label: p, color: palette[i%len(palette)]}
	}
	return entries
}

func (g *Generator) drawLegend(dc *gg.Context, p plot, entries []legendEntry) {
	x := p.left
	y := p.top - 14.0
	for _, e := range entries {
		dc.SetRGB(e.color[0], e.color[1], e.color[2])
		dc.DrawRectangle(x, y-8, 10, 10)
		dc.Fill()
		dc.SetRGB(g.style.Label[0], g.style.Label[1], g.style.Label[2])
		dc.DrawString(e.label, x+14, y)

		w, _ := dc.MeasureString(e.label)
		x += 14 + w + 18
	}
}

// niceCeil rounds a maximum up to a readable axis ceiling.
func niceCeil(v int) int {
	if v <= 5 {
		return 5
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(float64(v))))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if float64(v) <= m*magnitude {
			return int(math.Ceil(m * magnitude))
		}
	}
	return v
}

// loadFont loads a font face from embedded font data
func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func encode(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
