// Package analytics derives dashboard figures from the current set of cards.
package analytics

import (
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/thenoetrevino/bidboard/internal/models"
)

// StageMetric is the card count and total value of one column
type StageMetric struct {
	Column models.ColumnID `json:"column"`
	Count  int             `json:"count"`
	Value  float64         `json:"value"`
}

// Metrics summarises a set of cards
type Metrics struct {
	Total int `json:"total"`

	// ActiveRFPs counts cards in New, In Progress and Submitted
	ActiveRFPs int `json:"active_rfps"`
	// PipelineValue sums the value of active cards
	PipelineValue float64 `json:"pipeline_value"`
	// Submitted counts proposals that have been sent: Submitted, Won and Lost
	Submitted int `json:"submitted"`

	Won     int     `json:"won"`
	Lost    int     `json:"lost"`
	WinRate float64 `json:"win_rate"` // won / (won + lost), 0 when nothing closed

	Stages []StageMetric `json:"stages"`

	MeanValue   float64 `json:"mean_value"`
	StdDevValue float64 `json:"stddev_value"`
	MedianValue float64 `json:"median_value"`
}

// Compute derives Metrics from cards. Stages are always listed in column
// display order, including empty ones.
func Compute(cards []models.Card) Metrics {
	m := Metrics{Total: len(cards)}

	byColumn := make(map[models.ColumnID]*StageMetric)
	for _, col := range models.Columns() {
		m.Stages = append(m.Stages, StageMetric{Column: col})
	}
	for i := range m.Stages {
		byColumn[m.Stages[i].Column] = &m.Stages[i]
	}

	values := make([]float64, 0, len(cards))
	for _, c := range cards {
		values = append(values, c.Value)
		if s, ok := byColumn[c.ColumnID]; ok {
			s.Count++
			s.Value += c.Value
		}

		if c.ColumnID.IsActive() {
			m.ActiveRFPs++
			m.PipelineValue += c.Value
		}
		switch c.ColumnID {
		case models.ColumnSubmitted:
			m.Submitted++
		case models.ColumnWon:
			m.Submitted++
			m.Won++
		case models.ColumnLost:
			m.Submitted++
			m.Lost++
		}
	}

	if closed := m.Won + m.Lost; closed > 0 {
		m.WinRate = float64(m.Won) / float64(closed)
	}

	m.MeanValue, m.StdDevValue, m.MedianValue = describe(values)
	return m
}

// describe returns mean, sample standard deviation and median of values.
// Empty input yields zeros; a single value has zero deviation.
func describe(values []float64) (mean, stddev, median float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	sorted := slices.Clone(values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		stddev = stat.StdDev(sorted, nil)
	}
	median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return mean, stddev, median
}

// ClientRecord is the closed-deal tally for one client
type ClientRecord struct {
	Client string  `json:"client"`
	Won    int     `json:"won"`
	Lost   int     `json:"lost"`
	Open   int     `json:"open"`
	Value  float64 `json:"won_value"`
}

// WinLoss tallies outcomes per client, sorted by won value then name
func WinLoss(cards []models.Card) []ClientRecord {
	idx := make(map[string]int)
	var out []ClientRecord
	for _, c := range cards {
		i, ok := idx[c.Client]
		if !ok {
			i = len(out)
			idx[c.Client] = i
			out = append(out, ClientRecord{Client: c.Client})
		}
		switch c.ColumnID {
		case models.ColumnWon:
			out[i].Won++
			out[i].Value += c.Value
		case models.ColumnLost:
			out[i].Lost++
		default:
			out[i].Open++
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Value != out[b].Value {
			return out[a].Value > out[b].Value
		}
		return out[a].Client < out[b].Client
	})
	return out
}

// Bars scales values to bar lengths of at most width cells. The largest value
// gets the full width; any positive value gets at least one cell.
func Bars(values []float64, width int) []int {
	out := make([]int, len(values))
	if width <= 0 {
		return out
	}
	highest := 0.0
	for _, v := range values {
		highest = math.Max(highest, v)
	}
	if highest <= 0 {
		return out
	}
	for i, v := range values {
		if v <= 0 {
			continue
		}
		n := int(math.Round(v / highest * float64(width)))
		out[i] = max(n, 1)
	}
	return out
}
