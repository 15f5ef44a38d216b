// Command bot runs the inventory chat-bot server: the event webhook, the
// export endpoints, and the health probes.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/founty-inventory/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
