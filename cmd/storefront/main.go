package main

import (
	"context"
	"log"

	"github.com/Apurer/go-storefront/internal/app/storefront"
)

func main() {
	if err := storefront.Run(context.Background()); err != nil {
		log.Fatalf("storefront exited: %v", err)
	}
}
