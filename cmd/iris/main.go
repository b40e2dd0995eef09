package main

import (
	"os"

	"github.com/iris-platform/iris-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
