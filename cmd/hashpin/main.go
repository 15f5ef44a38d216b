// Command hashpin prints the bcrypt hash of an admin PIN, for use as
// BOT_ADMIN_SECRET_HASH.
//
//	go run ./cmd/hashpin -pin 1234
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	pin := flag.String("pin", "", "admin PIN to hash")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if *pin == "" {
		log.Fatal("usage: hashpin -pin <secret> [-cost N]")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*pin), *cost)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	fmt.Println(string(hash))
}
