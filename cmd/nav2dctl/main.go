package main

import "github.com/arl/nav2d/cmd/nav2dctl/cmd"

func main() {
	cmd.Execute()
}
