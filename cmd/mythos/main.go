package main

import "github.com/KaiyzerCal/mythos-nexus/cmd/mythos/root"

func main() {
	root.Execute()
}
