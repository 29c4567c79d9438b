package main

import "github.com/Rorical/RoriMap/cmd"

func main() {
	cmd.Execute()
}
