package main

import "github.com/washify/laundry-market/internal/cli"

func main() {
	cli.Execute()
}
