package main

import "github.com/jsphweid/stavecards/cmd"

func main() {
	cmd.Execute()
}
