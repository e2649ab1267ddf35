package main

import "github.com/momozvault/go-backend/internal/app"

func main() {
	app.Run()
}
