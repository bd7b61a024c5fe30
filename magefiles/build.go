//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Default target when mage is run without arguments.
var Default = Build.All

type Build mg.Namespace

var commands = []string{"render", "inspect", "texdump"}

// All builds every command into bin/.
func (Build) All() error {
	mg.Deps(Check.Vet)
	for _, name := range commands {
		out := filepath.Join("bin", name)
		if err := goCmd(true, "build", "-o", out, "./cmd/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Tidy runs go mod tidy.
func (Build) Tidy() error {
	return goCmd(false, "mod", "tidy")
}
