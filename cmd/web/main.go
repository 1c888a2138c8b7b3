package main

import "intervue_backend/internal/app"

func main() {
	app.Run()
}
