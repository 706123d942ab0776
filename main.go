package main

import "github.com/mhalstead/linkgraph/cmd"

func main() {
	cmd.Execute()
}
