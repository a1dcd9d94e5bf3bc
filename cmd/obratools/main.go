package main

import "github.com/JonMunkholm/obratools/internal/cli"

func main() {
	cli.Execute()
}
