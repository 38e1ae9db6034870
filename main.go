package main

import "github.com/inovacc/edcourse/cmd"

func main() {
	cmd.Execute()
}
