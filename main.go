package main

import "github.com/llehouerou/mcsounds/internal/cli"

func main() {
	cli.Execute()
}
