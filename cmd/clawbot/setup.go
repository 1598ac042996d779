package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/hipsterbrown/feetech-servo/feetech"
	"go.bug.st/serial"

	"github.com/gwillem/clawbot/pkg/robot"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	subHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// highest servo ID probed during setup
const maxScanID = 12

type SetupCommand struct {
	Config string `long:"config" default:"clawbot.json" description:"Configuration file to write (.json or .yaml)"`
}

func (c *SetupCommand) Execute(args []string) error {
	fmt.Println(headerStyle.Render("Clawbot Setup"))
	fmt.Println(dimStyle.Render("━━━━━━━━━━━━━"))
	fmt.Println()

	// Step 1: Find the servo bus
	found := scanForBuses()
	if len(found) == 0 {
		fmt.Println("No servo bus found.")
		fmt.Println("Make sure the robot is connected and powered on.")
		os.Exit(1)
	}
	bus := chooseBus(found)
	for _, b := range found {
		if b.port != bus.port {
			b.bus.Close()
		}
	}
	defer bus.bus.Close()

	// Step 2: Map servos to channels
	fmt.Println()
	fmt.Println(subHeaderStyle.Render("━━━ Mapping Channels ━━━"))
	fmt.Println()
	channels := mapChannels(bus)

	cfg, err := robot.LoadConfigFrom(c.Config)
	if err != nil {
		cfg = robot.DefaultConfig()
	}
	cfg.Port = bus.port
	cfg.Channels = channels

	fmt.Println()
	fmt.Println(renderChannels(channels))

	if err := cfg.SaveTo(c.Config); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(dimStyle.Render("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"))
	if missing := channels.Missing(); len(missing) > 0 {
		fmt.Printf("Channels not mapped: %v\n", missing)
		fmt.Println("Run setup again once every motor is connected.")
	} else {
		fmt.Println(successStyle.Render("Setup complete!"))
	}
	fmt.Printf("Configuration saved to %s\n", c.Config)
	fmt.Println()
	fmt.Println("Start the robot with: " + headerStyle.Render("clawbot run"))

	return nil
}

type busInfo struct {
	port   string
	servos []feetech.FoundServo
	bus    *feetech.Bus
}

func scanForBuses() []busInfo {
	fmt.Println("Scanning for servo buses...")
	fmt.Println()

	ports, err := serial.GetPortsList()
	if err != nil {
		fmt.Printf("Error listing ports: %v\n", err)
		return nil
	}

	var buses []busInfo

	for _, port := range ports {
		// Skip Bluetooth ports on macOS
		if strings.Contains(port, "Bluetooth") {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)

		bus, err := feetech.NewBus(feetech.BusConfig{
			Port:     port,
			BaudRate: 1_000_000,
			Protocol: feetech.ProtocolSTS,
			Timeout:  100 * time.Millisecond,
		})
		if err != nil {
			cancel()
			continue
		}

		servos, err := bus.Scan(ctx, 1, maxScanID)
		cancel()

		if err != nil || len(servos) == 0 {
			bus.Close()
			continue
		}

		fmt.Printf("  Found %d servo(s) on %s\n", len(servos), port)
		buses = append(buses, busInfo{
			port:   port,
			servos: servos,
			bus:    bus,
		})
	}

	return buses
}

func chooseBus(buses []busInfo) busInfo {
	if len(buses) == 1 {
		return buses[0]
	}

	var options []huh.Option[int]
	for i, b := range buses {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%d servos)", b.port, len(b.servos)), i))
	}

	var choice int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which bus is the robot?").
				Options(options...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		fmt.Println()
		os.Exit(0)
	}
	return buses[choice]
}

func mapChannels(b busInfo) robot.Calibration {
	channels := make(robot.Calibration)

	for _, found := range b.servos {
		remaining := channels.Missing()
		if len(remaining) == 0 {
			break
		}

		servo := feetech.NewServo(b.bus, found.ID, found.Model)
		if err := spinServo(servo, found.ID); err != nil {
			fmt.Printf("  Error spinning servo %d: %v\n", found.ID, err)
			continue
		}

		ch, ok := askChannel(found.ID, remaining)
		if !ok {
			continue
		}
		channels[ch] = robot.ChannelCalibration{
			ID:       found.ID,
			Reversed: !askDirection(ch),
		}
	}

	return channels
}

// spinServo turns a servo forward for a moment so the user can see which
// motor it is.
func spinServo(servo *feetech.Servo, id int) error {
	ctx := context.Background()

	if err := servo.Disable(ctx); err != nil {
		return err
	}
	if err := servo.SetOperatingMode(ctx, feetech.ModeVelocity); err != nil {
		return err
	}
	if err := servo.Enable(ctx); err != nil {
		return err
	}

	fmt.Printf("\n  Spinning servo %d...\n", id)
	servo.SetVelocity(ctx, robot.DefaultMaxVelocity/4)
	time.Sleep(800 * time.Millisecond)
	servo.SetVelocity(ctx, 0)

	return servo.Disable(ctx)
}

func askChannel(id int, remaining []robot.Channel) (robot.Channel, bool) {
	var options []huh.Option[string]
	for _, ch := range remaining {
		options = append(options, huh.NewOption(channelLabel(ch), string(ch)))
	}
	options = append(options, huh.NewOption("Skip this servo", "skip"))

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Which motor is servo %d?", id)).
				Description("The servo that just spun").
				Options(options...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		fmt.Println()
		os.Exit(0)
	}

	if choice == "skip" {
		return "", false
	}
	return robot.Channel(choice), true
}

func askDirection(ch robot.Channel) bool {
	forward := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Did %s turn %s?", ch, positiveDirection(ch))).
				Affirmative("Yes").
				Negative("No, reverse it").
				Value(&forward),
		),
	)
	if err := form.Run(); err != nil {
		fmt.Println()
		os.Exit(0)
	}
	return forward
}

func channelLabel(ch robot.Channel) string {
	return strings.ReplaceAll(string(ch), "_", " ")
}

func positiveDirection(ch robot.Channel) string {
	switch ch {
	case robot.LiftLeft, robot.LiftRight:
		return "so the lift goes up"
	case robot.ClawLeft, robot.ClawRight:
		return "so the claw opens"
	case robot.FrontLeft, robot.RearRight:
		return "so the robot drives forward"
	}
	// front right and rear left are mounted mirrored
	return "so the robot drives backward"
}

func renderChannels(channels robot.Calibration) string {
	rows := make([][]string, 0, len(robot.AllChannels()))
	for _, ch := range robot.AllChannels() {
		cc, ok := channels[ch]
		if !ok {
			rows = append(rows, []string{string(ch), "-", "-"})
			continue
		}
		rows = append(rows, []string{
			string(ch),
			fmt.Sprintf("%d", cc.ID),
			fmt.Sprintf("%t", cc.Reversed),
		})
	}

	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Channel", "Servo", "Reversed").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
	return t.Render()
}
