package main

import "github.com/liamg/portgate/cmd"

func main() {
	cmd.Execute()
}
