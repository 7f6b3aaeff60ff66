package main

import "github.com/d-lobanov/pomodorod/cmd/pomodorod/cmd"

func main() {
	cmd.Execute()
}
