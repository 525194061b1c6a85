package main

import "path-mapper/cmd"

func main() {
	cmd.Execute()
}
