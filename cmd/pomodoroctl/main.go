package main

import "github.com/d-lobanov/pomodorod/cmd/pomodoroctl/cmd"

func main() {
	cmd.Execute()
}
