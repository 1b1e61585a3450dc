package main

import "github.com/akshaynair/blockbridge/cmd"

func main() {
	cmd.Execute()
}
