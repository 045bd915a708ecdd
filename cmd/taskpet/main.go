package main

import "taskpet/cmd/taskpet/root"

func main() {
	root.Execute()
}
