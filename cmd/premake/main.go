package main

import "github.com/PremakeDevs/premake-dev/cmd/premake/internal"

func main() {
	internal.Execute()
}
