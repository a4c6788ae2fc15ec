package main

import "github.com/mxdubois/sportsball/cmd"

func main() {
	cmd.Execute()
}
