// cmd/main.go
package main

import (
	"os"

	"go-bank-ledger/app"
)

func main() {
	os.Exit(app.Run())
}
