package main

import "github.com/bmatsuo/malish/cmd"

func main() {
	cmd.Execute()
}
