package main

import "github.com/ltrask/melodiff/cmd"

func main() {
	cmd.Execute()
}
