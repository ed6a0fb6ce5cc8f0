package main

import "github.com/callgrid/callgrid-mcp/cmd"

func main() {
	cmd.Execute()
}
