//go:build cli

package main

import (
	_ "glomnidesigns.GO/custom"

	"glomnidesigns.GO/cmd"
	"glomnidesigns.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
