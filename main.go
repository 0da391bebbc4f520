package main

import "github.com/fakeyudi/trk/cmd"

func main() {
	cmd.Execute()
}
