package main

import "skillswap/cmd/swapctl/command"

func main() {
	command.Execute()
}
