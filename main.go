package main

import "curtisos.com/curtisos/cmd"

func main() {
	cmd.Execute()
}
