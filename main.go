package main

import "github.com/tonimelisma/dealcloud-activity/cmd"

func main() {
	cmd.Execute()
}
