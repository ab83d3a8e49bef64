package main

import "github.com/endeavored/classwatch/internal/app/classwatch/cli"

func main() {
	cli.Execute()
}
