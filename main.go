package main

import "github.com/theirongolddev/padma/cmd"

func main() {
	cmd.Execute()
}
