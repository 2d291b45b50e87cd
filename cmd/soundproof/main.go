package main

import "github.com/mkravtsov/soundproof-estimator/internal/cli"

func main() {
	cli.Execute()
}
