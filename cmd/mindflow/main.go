package main

import "github.com/mindflow-labs/mindflow-agent/internal/cmd"

func main() {
	cmd.Execute()
}
