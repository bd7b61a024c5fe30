//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Check mg.Namespace

// Vet runs go vet on every package.
func (Check) Vet() error {
	return goCmd(true, "vet", "./...")
}

// Test runs the unit tests with the race detector.
func (Check) Test() error {
	return goCmd(true, "test", "-race", "./...")
}

// Cover writes a coverage profile to coverage.out and prints the summary.
func (Check) Cover() error {
	if err := goCmd(false, "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return goCmd(true, "tool", "cover", "-func=coverage.out")
}
