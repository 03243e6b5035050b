package main

import (
	"github.com/natsuneco/organica-chart-converter/cmd"
)

func main() {
	cmd.Execute()
}
