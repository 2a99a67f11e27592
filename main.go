package main

import "github.com/flavyr/flavyr/cmd"

func main() {
	cmd.Execute()
}
