package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"

	"github.com/gwillem/clawbot/pkg/bot"
	"github.com/gwillem/clawbot/pkg/competition"
	"github.com/gwillem/clawbot/pkg/gamepad"
	"github.com/gwillem/clawbot/pkg/lcd"
	"github.com/gwillem/clawbot/pkg/robot"
)

type RunCommand struct {
	RobotOptions
	Step float64 `long:"step" default:"32" description:"Stick change per key press"`
}

const (
	headerHeight = 2 // title + blank line
	legendHeight = 2 // legend row + blank
	padHeight    = 2 // controller row + blank
	footerHeight = 7 // log box height
	maxLogs      = 5 // number of log messages to show
	borderSize   = 2 // chart border
	sampleEvery  = 50 * time.Millisecond
)

// Channel colors - distinct colors for each motor
var channelColors = map[robot.Channel]string{
	robot.FrontLeft:  "196", // red
	robot.FrontRight: "208", // orange
	robot.RearLeft:   "226", // yellow
	robot.RearRight:  "46",  // green
	robot.LiftLeft:   "51",  // cyan
	robot.LiftRight:  "33",  // blue
	robot.ClawLeft:   "201", // magenta
	robot.ClawRight:  "141", // purple
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chartStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	heldStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	modeStyles  = map[competition.Mode]lipgloss.Style{
		competition.Disabled:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		competition.CompetitionInit: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		competition.Autonomous:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		competition.OperatorControl: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
)

// Keyboard layout of the virtual controller
var (
	axisKeys = map[string]struct {
		axis gamepad.Axis
		sign float64
	}{
		"w":     {gamepad.LeftY, 1},
		"s":     {gamepad.LeftY, -1},
		"a":     {gamepad.LeftX, -1},
		"d":     {gamepad.LeftX, 1},
		"up":    {gamepad.RightY, 1},
		"down":  {gamepad.RightY, -1},
		"left":  {gamepad.RightX, -1},
		"right": {gamepad.RightX, 1},
	}
	buttonKeys = map[string]gamepad.Button{
		"t": gamepad.Up,
		"g": gamepad.Down,
		"f": gamepad.Left,
		"h": gamepad.Right,
		"y": gamepad.L1,
		"n": gamepad.L2,
		"u": gamepad.R1,
		"m": gamepad.R2,
	}
	modeKeys = map[string]competition.Mode{
		"1": competition.Disabled,
		"2": competition.CompetitionInit,
		"3": competition.Autonomous,
		"4": competition.OperatorControl,
	}
)

const helpLine = "1-4 mode · wasd left stick · arrows right stick · t/g/f/h d-pad · y/u/n/m claw · space release · c lcd · q quit"

// logFeed collects log lines from the field and the controller.
type logFeed chan string

func (l logFeed) logf(format string, args ...any) {
	msg := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	select {
	case l <- msg:
	default:
		// Drop if channel full
	}
}

type runModel struct {
	ctx      context.Context
	bot      *bot.Bot
	field    *competition.Field
	pad      *gamepad.Virtual
	rec      *robot.Recorder
	feed     logFeed
	step     float64
	chart    *streamlinechart.Model
	width    int      // terminal width
	height   int      // terminal height
	logs     []string // last N log messages
	quitting bool
	lastSent robot.PowerMap // freeze the chart when nothing changes
}

func (m *runModel) addLog(msg string) {
	m.logs = append(m.logs, msg)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// hasChanged checks if any channel command differs from the last sample
func (m *runModel) hasChanged(cmds robot.PowerMap) bool {
	if m.lastSent == nil {
		return true
	}
	for ch, p := range cmds {
		if last, ok := m.lastSent[ch]; !ok || p != last {
			return true
		}
	}
	return false
}

type tickMsg time.Time

// logMsg is one log line and the feed it came from
type logMsg struct {
	text string
	from <-chan string
}

func sample() tea.Cmd {
	return tea.Tick(sampleEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForLog(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return logMsg{text: <-ch, from: ch}
	}
}

// chartSize calculates the size of the chart based on terminal dimensions
func (m *runModel) chartSize() (width, height int) {
	if m.width == 0 || m.height == 0 {
		return 80, 20 // default size before we know terminal size
	}
	width = m.width - borderSize - 2
	if width < 40 {
		width = 40
	}
	height = m.height - headerHeight - legendHeight - padHeight - footerHeight - lcd.Lines - 2*borderSize
	if height < 10 {
		height = 10
	}
	return width, height
}

func (m *runModel) resizeChart() {
	w, h := m.chartSize()
	m.chart.Resize(w, h)
}

func initialRunModel(ctx context.Context, b *bot.Bot, field *competition.Field, pad *gamepad.Virtual, rec *robot.Recorder, feed logFeed, step float64) runModel {
	chart := streamlinechart.New(80, 20,
		streamlinechart.WithYRange(-float64(robot.MaxPower), float64(robot.MaxPower)),
	)

	// Set up data set styles for each channel
	for _, ch := range robot.AllChannels() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(channelColors[ch]))
		chart.SetDataSetStyles(string(ch), runes.ThinLineStyle, style)
	}

	return runModel{
		ctx:   ctx,
		bot:   b,
		field: field,
		pad:   pad,
		rec:   rec,
		feed:  feed,
		step:  step,
		chart: &chart,
	}
}

func (m runModel) Init() tea.Cmd {
	return tea.Batch(
		sample(),
		waitForLog(m.feed),
		waitForLog(m.bot.Controller().Logs()),
	)
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeChart()
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.pad.Release()
			return m, nil
		case "c":
			m.bot.Screen().Press(lcd.CenterButton)
			return m, nil
		}
		if mode, ok := modeKeys[key]; ok {
			m.field.Enter(m.ctx, mode)
			return m, nil
		}
		if a, ok := axisKeys[key]; ok {
			m.pad.Nudge(a.axis, a.sign*m.step)
			return m, nil
		}
		if b, ok := buttonKeys[key]; ok {
			m.pad.Toggle(b)
			return m, nil
		}

	case tickMsg:
		cmds := m.rec.Last()
		// Only update chart if a command changed (freeze when idle)
		if m.hasChanged(cmds) {
			for ch, p := range cmds {
				m.chart.PushDataSet(string(ch), float64(p))
			}
			m.chart.DrawAll()
			m.lastSent = cmds
		}
		return m, sample()

	case logMsg:
		m.addLog(msg.text)
		return m, waitForLog(msg.from)
	}

	return m, nil
}

func (m runModel) View() string {
	if m.quitting {
		return "Robot stopped.\n"
	}

	var sb strings.Builder

	// Header
	mode := m.field.Mode()
	sb.WriteString(titleStyle.Render("Clawbot"))
	sb.WriteString(" - ")
	sb.WriteString(modeStyles[mode].Render(mode.String()))
	if m.width > 0 {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("  [%dx%d]", m.width, m.height)))
	}
	sb.WriteString("\n\n")

	// Chart
	sb.WriteString(chartStyle.Render(m.chart.View()))
	sb.WriteString("\n")

	// Legend
	sb.WriteString(renderLegend())
	sb.WriteString("\n")

	// Controller
	sb.WriteString(renderPad(m.pad.State()))
	sb.WriteString("\n")

	// Status screen
	screenStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	text := m.bot.Screen().Text()
	sb.WriteString(screenStyle.Render(strings.Join(text[:], "\n")))
	sb.WriteString("\n")

	// Log box
	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.width - 4).
		Foreground(lipgloss.Color("9")) // bright red

	var logLines string
	if len(m.logs) == 0 {
		logLines = statusStyle.Render(helpLine)
	} else {
		logLines = strings.Join(m.logs, "\n")
	}
	sb.WriteString(logStyle.Render(logLines))
	sb.WriteString("\n")

	return sb.String()
}

func renderLegend() string {
	var items []string
	for _, ch := range robot.AllChannels() {
		colorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(channelColors[ch])).Bold(true)
		item := colorStyle.Render("━━") + " " + string(ch)
		items = append(items, item)
	}
	return strings.Join(items, "  ")
}

func renderPad(s gamepad.Snapshot) string {
	var items []string
	for _, a := range gamepad.AllAxes() {
		items = append(items, fmt.Sprintf("%s %+4.0f", a, s.Analog(a)))
	}
	for _, b := range gamepad.AllButtons() {
		if s.Digital(b) {
			items = append(items, heldStyle.Render(b.String()))
		} else {
			items = append(items, statusStyle.Render(b.String()))
		}
	}
	return strings.Join(items, "  ")
}

func (c *RunCommand) Execute(args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec, closeSink, err := c.openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	feed := make(logFeed, 10)
	pad := gamepad.NewVirtual()

	b, err := bot.New(bot.Config{
		Source: pad,
		Sink:   rec,
		Tuning: cfg.Tuning,
		Logf:   feed.logf,
	})
	if err != nil {
		return err
	}

	field := b.Field()
	if err := field.Initialize(ctx); err != nil {
		return err
	}
	field.Enter(ctx, competition.Disabled)
	defer field.Close(context.Background())

	p := tea.NewProgram(initialRunModel(ctx, b, field, pad, rec, feed, c.Step), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}

	return nil
}
