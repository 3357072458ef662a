package main

import "bigocheck/cmd"

func main() {
	cmd.Execute()
}
