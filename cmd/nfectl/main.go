package main

import "github.com/hugohenrick/gerador-nfe/cmd/nfectl/cmd"

func main() {
	cmd.Execute()
}
