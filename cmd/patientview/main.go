package main

import "github.com/goliatone/go-patientview/internal/cli"

func main() {
	cli.Execute()
}
