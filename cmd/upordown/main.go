package main

import (
	"VCS_Status_Microservice/internal/upordown/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
