package main

import "github.com/regwatch/regwatch/cmd"

func main() {
	cmd.Run()
}
