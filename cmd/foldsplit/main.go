package main

import (
	"github.com/webfold/foldsplit/cmd/foldsplit/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	commands.Execute()
}
