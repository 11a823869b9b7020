package main

import "lensx/cmd"

func main() {
	cmd.Execute()
}
