package main

import (
	"Ordo/cmd/ordlist/app"
)

func main() {
	app.New("ordlist").Run()
}
