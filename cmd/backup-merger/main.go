package main

import "backup-merger/cmd"

func main() {
	cmd.Execute()
}
