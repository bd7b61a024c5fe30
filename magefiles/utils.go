//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// run executes cmd with args from the repo root. Output is streamed when
// stream is set or mage runs with -v; otherwise it is captured and only
// printed if the command fails.
func run(stream bool, cmd string, args ...string) error {
	line := strings.TrimSpace(cmd + " " + strings.Join(args, " "))
	fmt.Println("Executing:", line)

	if stream || mg.Verbose() {
		if err := sh.RunV(cmd, args...); err != nil {
			return fmt.Errorf("%s: %w", line, err)
		}
		return nil
	}
	out, err := sh.Output(cmd, args...)
	if err != nil {
		fmt.Println("... failed command output:")
		fmt.Println(out)
		return fmt.Errorf("%s: %w", line, err)
	}
	return nil
}

// goCmd runs a go subcommand.
func goCmd(stream bool, args ...string) error {
	return run(stream, "go", args...)
}
