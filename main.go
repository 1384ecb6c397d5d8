package main

import "github.com/mfigueredo/viatico/cmd"

func main() {
	cmd.Execute()
}
