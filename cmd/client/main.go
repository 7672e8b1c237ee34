package main

import "signhub/cmd/client/cmd"

func main() {
	cmd.Execute()
}
