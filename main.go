package main

import "github.com/cwel/kwm/cmd"

func main() {
	cmd.Execute()
}
