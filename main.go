package main

import "github.com/rskv-p/rtree/cmd"

func main() {
	cmd.Execute()
}
