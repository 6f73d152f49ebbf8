package main

import (
	"os"

	"github.com/jiocb86/gridflow/service"
)

func main() {
	os.Exit(service.HandleExitError(os.Stderr, service.RunApp()))
}
