package main

import (
	"os"

	modapp "github.com/warptools/modcreator/app"
)

func main() {
	modapp.App.Reader = os.Stdin
	modapp.App.Writer = os.Stdout
	modapp.App.ErrWriter = os.Stderr
	err := modapp.App.Run(os.Args)
	if err != nil {
		os.Exit(1)
	}
}
