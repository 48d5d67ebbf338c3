package main

import "github.com/MeKo-Tech/nicecolors/internal/cmd"

func main() {
	cmd.Execute()
}
