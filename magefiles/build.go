//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the sandbox into bin/sandbox.
func (Build) Sandbox() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/sandbox", "."), withStream())
	return err
}

// Tidies the module requirements.
func (Build) Tidy() error {
	return goModTidy()
}
