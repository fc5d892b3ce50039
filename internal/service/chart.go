package service

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"github.com/mkarlen/fitlog/internal/domain"
	"golang.org/x/image/font/basicfont"
)

// holeRadiusRatio is the share of the wedge radius left blank in the middle,
// turning the pie into a donut.
const holeRadiusRatio = 0.70

const chartTitle = "Calories Burned by Exercise"

// palette holds the wedge fill colors, reused cyclically.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// CategoryTotal is the summed calories for one exercise name plus its share
// of the overall total.
type CategoryTotal struct {
	Name     string
	Calories float64
	Percent  float64
}

// Summary is the aggregated view of a user's history: per-exercise calorie
// totals and a rendered donut chart.
type Summary struct {
	Categories []CategoryTotal
	ChartPNG   []byte
}

// ChartService aggregates a user's workout history into per-exercise calorie
// totals and renders them as a donut chart.
type ChartService struct {
	workouts domain.WorkoutRepository
	width    int
	height   int
}

// NewChartService creates a new ChartService rendering at the given canvas
// size.
func NewChartService(workouts domain.WorkoutRepository, width, height int) *ChartService {
	return &ChartService{workouts: workouts, width: width, height: height}
}

// BuildSummary fetches the user's full history, sums calories per exercise
// name, and renders the donut chart. A user with no workouts gets an empty
// category list and a wedge-free chart; that is not an error.
func (s *ChartService) BuildSummary(ctx context.Context, userID int64) (*Summary, error) {
	workouts, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	categories := Summarize(workouts)

	img, err := renderDonut(categories, s.width, s.height)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	return &Summary{Categories: categories, ChartPNG: img}, nil
}

// Summarize groups workouts by exact exercise name and sums calories within
// each group. Names are not normalized: "Running" and "running" are distinct
// categories. Output order is first-seen order over the input, which is
// deterministic because the repository returns insertion order.
func Summarize(workouts []domain.Workout) []CategoryTotal {
	var (
		order  []string
		totals = make(map[string]float64)
	)
	for _, w := range workouts {
		if _, seen := totals[w.ExerciseName]; !seen {
			order = append(order, w.ExerciseName)
		}
		totals[w.ExerciseName] += w.Calories
	}

	var grand float64
	for _, cal := range totals {
		grand += cal
	}

	categories := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		c := CategoryTotal{Name: name, Calories: totals[name]}
		if grand > 0 {
			c.Percent = c.Calories / grand * 100
		}
		categories = append(categories, c)
	}
	return categories
}

// renderDonut rasterizes the category breakdown as a donut chart: wedges
// proportional to calories, starting at twelve o'clock and running clockwise,
// with the inner 70% of the radius blanked out. Each wedge is labeled with
// its exercise name and percentage share.
func renderDonut(categories []CategoryTotal, width, height int) ([]byte, error) {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	cx := float64(width) / 2
	cy := float64(height) / 2
	radius := math.Min(cx, cy) * 0.68

	var total float64
	for _, c := range categories {
		total += c.Calories
	}

	if total > 0 {
		angle := -math.Pi / 2
		for i, c := range categories {
			sweep := c.Calories / total * 2 * math.Pi
			dc.MoveTo(cx, cy)
			dc.DrawArc(cx, cy, radius, angle, angle+sweep)
			dc.ClosePath()
			dc.SetHexColor(palette[i%len(palette)])
			dc.Fill()
			angle += sweep
		}
	}

	// Blank center hole.
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(cx, cy, radius*holeRadiusRatio)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(chartTitle, cx, 16, 0.5, 0.5)

	if total > 0 {
		angle := -math.Pi / 2
		labelRadius := radius * 1.12
		for _, c := range categories {
			sweep := c.Calories / total * 2 * math.Pi
			mid := angle + sweep/2
			x := cx + math.Cos(mid)*labelRadius
			y := cy + math.Sin(mid)*labelRadius

			// Anchor labels away from the ring so they do not
			// overlap the wedges.
			ax := 0.5
			switch {
			case math.Cos(mid) > 0.1:
				ax = 0
			case math.Cos(mid) < -0.1:
				ax = 1
			}

			label := fmt.Sprintf("%s %.1f%%", c.Name, c.Percent)
			dc.DrawStringAnchored(label, x, y, ax, 0.5)
			angle += sweep
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
