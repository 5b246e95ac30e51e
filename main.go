package main

import "github.com/Ivan-Pavelic/stroop-effect/cmd/app"

func main() {
	app.Run()
}
