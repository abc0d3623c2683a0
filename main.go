package main

import (
	"os"

	"scrollshow/internal/app"
)

func main() {
	os.Exit(app.Main(os.Args[1:]))
}
