package main

import "github.com/julienpequegnot/blogpost/cmd"

func main() {
	cmd.Execute()
}
