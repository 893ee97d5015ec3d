//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the sandbox in a window with config.toml.
func (Run) Sandbox() error {
	fmt.Println("Run sandbox...")
	_, err := executeCmd("go", withArgs("run", ".", "config.toml"), withStream())
	return err
}

// Runs the sandbox without a window for a fixed number of frames.
func (Run) Headless() error {
	fmt.Println("Run sandbox headless...")
	_, err := executeCmd("go", withArgs("run", ".", "headless.toml"), withStream())
	return err
}
