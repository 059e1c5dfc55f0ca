package main

import "github.com/schedtools/st/cmd"

func main() {
	cmd.Execute()
}
