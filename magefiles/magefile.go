//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles both binaries into ./bin
func Build() error {
	mg.Deps(BuildExtract, BuildDeck)
	return nil
}

// BuildExtract compiles the extract-flash-cards binary
func BuildExtract() error {
	fmt.Println("Building extract-flash-cards...")
	return sh.Run("go", "build", "-o", "bin/extract-flash-cards", "./cmd/extract-flash-cards")
}

// BuildDeck compiles the csv-to-anki binary
func BuildDeck() error {
	fmt.Println("Building csv-to-anki...")
	return sh.Run("go", "build", "-o", "bin/csv-to-anki", "./cmd/csv-to-anki")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs both binaries with go install
func Install() error {
	if err := sh.Run("go", "install", "./cmd/extract-flash-cards"); err != nil {
		return err
	}
	return sh.Run("go", "install", "./cmd/csv-to-anki")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
