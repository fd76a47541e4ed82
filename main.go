package main

import "github.com/Joaovitor2710/dashboard-ibge/cmd"

func main() {
	cmd.Execute()
}
