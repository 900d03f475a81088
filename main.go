package main

import "github.com/JonMunkholm/PhoneAdvisor/internal/cli"

func main() {
	cli.Execute()
}
