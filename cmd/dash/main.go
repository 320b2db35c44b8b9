package main

import "dashline/cmd/dash/root"

func main() {
	root.Execute()
}
