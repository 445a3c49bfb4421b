package main

import "github.com/camaclean/alpsinfo/cmd"

func main() {
	cmd.Execute()
}
