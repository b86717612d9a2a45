package main

import "mshell.dev/msh/cmd"

func main() {
	cmd.Execute()
}
