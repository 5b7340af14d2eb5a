// Package main is the entry point for the eghc component compiler.
package main

import "github.com/mouse-blink/eghc/cmd"

func main() {
	cmd.Execute()
}
