package main

import "github.com/mouse-blink/compatfix/cmd"

func main() {
	cmd.Execute()
}
