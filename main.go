package main

import (
	"nenodeploy/cmd"
)

func main() {
	cmd.Execute()
}
