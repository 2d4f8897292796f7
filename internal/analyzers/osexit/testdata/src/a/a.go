package main

import (
	"fmt"
	"os"
)

func exit() {
	os.Exit(2)
}

func main() {
	fmt.Println("start")
	defer exit()

	if len(os.Args) > 1 {
		os.Exit(1) // want "direct call to os.Exit in main function"
	}

	func() {
		os.Exit(3) // want "direct call to os.Exit in main function"
	}()
}
