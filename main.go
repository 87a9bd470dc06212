package main

import "github.com/tranvictor/activity/cmd"

func main() {
	cmd.Execute()
}
