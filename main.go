package main

import "github.com/frahmantamala/homecare-staffing/cmd"

func main() {
	cmd.Execute()
}
