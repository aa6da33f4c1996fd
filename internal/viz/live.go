package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tfunk1030/Test-yardage-sub000/internal/physics"
)

const (
	liveWidth  = 78
	liveHeight = 18
	frameRate  = 30
)

type tickMsg time.Time

// ShotModel replays a finished trajectory as a side-view animation.
// The simulation is already done when the model starts; playback just
// walks the recorded points.
type ShotModel struct {
	club       string
	trajectory []physics.TrajectoryPoint
	result     physics.SimulationResult

	idx     int
	stride  int
	paused  bool
	done    bool
	maxX    float64
	maxY    float64
}

// NewShot builds a playback model for one run. Playback is pinned to a
// few seconds regardless of flight time.
func NewShot(club string, trajectory []physics.TrajectoryPoint, result physics.SimulationResult) ShotModel {
	maxX, maxY := 1.0, 1.0
	for _, p := range trajectory {
		if p.Position.X > maxX {
			maxX = p.Position.X
		}
		if p.Position.Y > maxY {
			maxY = p.Position.Y
		}
	}

	stride := len(trajectory) / (4 * frameRate)
	if stride < 1 {
		stride = 1
	}

	return ShotModel{
		club:       club,
		trajectory: trajectory,
		result:     result,
		stride:     stride,
		maxX:       maxX,
		maxY:       maxY,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m ShotModel) Init() tea.Cmd { return tick() }

func (m ShotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.idx = 0
			m.done = false
		}
		return m, nil
	case tickMsg:
		if !m.paused && !m.done {
			m.idx += m.stride
			if m.idx >= len(m.trajectory)-1 {
				m.idx = len(m.trajectory) - 1
				m.done = true
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m ShotModel) View() string {
	canvas := make([][]rune, liveHeight)
	for i := range canvas {
		canvas[i] = make([]rune, liveWidth)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	plot := func(p physics.TrajectoryPoint) (int, int) {
		x := int(p.Position.X / m.maxX * float64(liveWidth-1))
		y := liveHeight - 2 - int(p.Position.Y/m.maxY*float64(liveHeight-3))
		return x, y
	}

	set := func(x, y int, c rune) {
		if x >= 0 && x < liveWidth && y >= 0 && y < liveHeight {
			canvas[y][x] = c
		}
	}

	for i := 0; i <= m.idx; i += m.stride {
		x, y := plot(m.trajectory[i])
		set(x, y, '·')
	}
	bx, by := plot(m.trajectory[m.idx])
	set(bx, by, '●')

	for x := 0; x < liveWidth; x++ {
		canvas[liveHeight-1][x] = '─'
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf(" %s — live flight", m.club)) + "\n")
	for _, row := range canvas {
		b.WriteString(string(row) + "\n")
	}

	p := m.trajectory[m.idx]
	b.WriteString(fmt.Sprintf(" t=%5.2fs  dist=%5.1f yd  height=%5.1f m  speed=%5.1f m/s\n",
		p.Time,
		physics.YardsFromMeters(p.Position.X),
		p.Position.Y,
		p.Velocity.Magnitude(),
	))

	if m.done {
		b.WriteString("\n" + Summary(m.club, m.result))
		b.WriteString(LabelStyle.Render(" r replay · q quit"))
	} else {
		b.WriteString(LabelStyle.Render(" space pause · r restart · q quit"))
	}
	return b.String()
}
