package main

import (
	"fmt"
	"os/exec"
)

// Player triggers the audible alert accompanying a state change.
type Player interface {
	Play() error
}

// commandPlayer shells out to a user-configured command, e.g.
// "paplay /usr/share/sounds/bell.oga". The command runs fire-and-forget
// so a slow audio stack cannot delay the next poll cycle.
type commandPlayer struct {
	argv []string
}

func NewCommandPlayer(argv []string) *commandPlayer {
	if len(argv) == 0 {
		panic("commandPlayer requires a command")
	}
	return &commandPlayer{argv: argv}
}

func (p *commandPlayer) Play() error {
	cmd := exec.Command(p.argv[0], p.argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start sound command: %w", err)
	}
	go cmd.Wait() //nolint
	return nil
}
