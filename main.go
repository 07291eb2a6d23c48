package main

import "github.com/jsphweid/fretfinder/cmd"

func main() {
	cmd.Execute()
}
