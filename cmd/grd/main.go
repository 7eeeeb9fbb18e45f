package main

import "github.com/gracefulearth/petragrd/cmd/grd/cmd"

func main() {
	cmd.Execute()
}
