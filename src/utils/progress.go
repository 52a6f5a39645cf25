package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const meterWidth = 40

// LayerMeter renders an in-place terminal meter for a sequential encode,
// tracking completed SLOTH layers against the requested round count. The
// encode chain cannot be parallelized, so layer completions are the only
// progress signal available; the meter derives rate and remaining time
// from them.
type LayerMeter struct {
	total    uint64
	done     uint64
	began    time.Time
	lastDraw time.Time
	out      io.Writer
}

// NewLayerMeter returns a meter for an encode of totalLayers rounds,
// drawing to stdout.
func NewLayerMeter(totalLayers uint64) *LayerMeter {
	return &LayerMeter{
		total: totalLayers,
		began: time.Now(),
		out:   os.Stdout,
	}
}

// Set records that completed layers have finished and redraws the meter.
// Redraws are throttled to roughly four per second so a fast encode does
// not flood the terminal; the final layer always draws.
func (m *LayerMeter) Set(completed uint64) {
	m.done = completed

	now := time.Now()
	if completed < m.total && now.Sub(m.lastDraw) < 250*time.Millisecond {
		return
	}
	m.lastDraw = now
	m.draw()
}

// Done forces a full meter and terminates the line.
func (m *LayerMeter) Done() {
	m.done = m.total
	m.draw()
	fmt.Fprintln(m.out)
}

func (m *LayerMeter) draw() {
	filled := 0
	if m.total > 0 {
		filled = int(uint64(meterWidth) * m.done / m.total)
	}

	var bar strings.Builder
	bar.WriteByte('[')
	for i := 0; i < meterWidth; i++ {
		if i < filled {
			bar.WriteByte('#')
		} else {
			bar.WriteByte('.')
		}
	}
	bar.WriteByte(']')

	elapsed := time.Since(m.began)
	eta := "?"
	if m.done > 0 {
		perLayer := elapsed / time.Duration(m.done)
		eta = HumanDuration(perLayer * time.Duration(m.total-m.done))
	}

	fmt.Fprintf(m.out, "\r%s layer %d/%d  elapsed %s  eta %s",
		bar.String(), m.done, m.total, HumanDuration(elapsed), eta)
}

// EtaForOps converts a permutation count and a measured rate into an
// expected wall-clock duration. A rate of zero or less yields zero.
func EtaForOps(ops uint64, opsPerSecond float64) time.Duration {
	if opsPerSecond <= 0 {
		return 0
	}
	return time.Duration(float64(ops) / opsPerSecond * float64(time.Second))
}

// HumanDuration renders a duration at the two most significant units, the
// way an operator reads an encode estimate: "42s", "3m07s", "5h12m",
// "2d16h".
func HumanDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()+0.5))
	case d < time.Hour:
		mins := int(d.Minutes())
		return fmt.Sprintf("%dm%02ds", mins, int(d.Seconds())-mins*60)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		return fmt.Sprintf("%dh%02dm", hours, int(d.Minutes())-hours*60)
	default:
		days := int(d.Hours()) / 24
		return fmt.Sprintf("%dd%dh", days, int(d.Hours())-days*24)
	}
}
