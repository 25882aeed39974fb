package main

import "github.com/MyCarrier-DevOps/go-pushdelta/cmd"

func main() {
	cmd.Execute()
}
