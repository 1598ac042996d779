package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gwillem/clawbot/pkg/auton"
	"github.com/gwillem/clawbot/pkg/robot"
)

type AutonCommand struct {
	RobotOptions
}

func (c *AutonCommand) Execute(args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sink, closeSink, err := c.openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	routine := auton.DefaultRoutine(cfg.Tuning)
	fmt.Printf("Running autonomous routine (%s)\n", routine.Duration())

	runner := auton.Runner{Sink: sink, Logf: log.Printf}
	err = runner.Run(ctx, routine)

	// leave every motor stopped, also after an interrupt
	if stopErr := sink.Apply(context.Background(), robot.Zero()); stopErr != nil {
		log.Printf("Warning: failed to stop motors: %v", stopErr)
	}
	if err != nil {
		return fmt.Errorf("autonomous: %w", err)
	}

	fmt.Println(successStyle.Render("Autonomous complete."))
	return nil
}
