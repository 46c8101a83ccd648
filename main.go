package main

import "github.com/KaramelBytes/mortgage-econ/cmd"

func main() {
	cmd.Execute()
}
