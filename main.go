package main

import "github.com/mouse-blink/bundlepatch/cmd"

func main() {
	cmd.Execute()
}
