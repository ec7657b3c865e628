package main

import "github.com/openchannel/manningmc/cmd"

func main() {
	cmd.Execute()
}
