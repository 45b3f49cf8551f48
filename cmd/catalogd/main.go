// Command catalogd runs a local catalog fixture server compatible with the
// remote API, for demos and offline development:
//
//	catalogd -addr :8080
//	client  -u http://127.0.0.1:8080
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/catalogd"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	items, err := catalogd.Seed()
	if err != nil {
		log.Fatalf("%v", err)
	}

	srv := catalogd.NewServer(items)
	log.Printf("catalogd listening on %s (%d products)", *addr, len(items))
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		log.Fatalf("%v", err)
	}
}
