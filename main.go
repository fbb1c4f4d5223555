package main

import (
	"os"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
