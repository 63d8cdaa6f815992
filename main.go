package main

import "github.com/colstore/colstore/cmd"

func main() {
	cmd.Execute()
}
