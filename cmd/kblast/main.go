// cmd/kblast/main.go
package main

import (
	"kblast/internal/app"
	"kblast/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
