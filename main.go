package main

import "github.com/mouse-blink/mdalint/cmd"

func main() {
	cmd.Execute()
}
