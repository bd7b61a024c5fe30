//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Samples renders every skin in ./skins in each preset mode into ./renders/<mode>.
func (Run) Samples() error {
	for _, mode := range []string{"full_body", "full_body_iso", "head", "head_iso", "face", "bust"} {
		fmt.Println("Rendering", mode)
		args := []string{"run", "./cmd/render", "-skins", "skins", "-output", "renders/" + mode, "-mode", mode}
		if err := goCmd(false, args...); err != nil {
			return err
		}
	}
	return nil
}

// Watch re-renders skins in ./skins as they change.
func (Run) Watch() error {
	mg.Deps(Build.All)
	return run(true, "bin/render", "-skins", "skins", "-watch")
}
