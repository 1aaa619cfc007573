package main

import "github.com/kanoonai/kanoon-web/cmd/kanoon-cli/cmd"

func main() {
	cmd.Execute()
}
