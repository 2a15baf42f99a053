package main

import "toolkit/cmd"

func main() {
	cmd.Execute()
}
