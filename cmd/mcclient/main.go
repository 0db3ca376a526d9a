// Command mcclient is a minimal interactive front end over the mcproto
// session engine — a client-side demo analogous to the original's main.py,
// not itself part of the protocol implementation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"mcproto/proto"
	"mcproto/session"
)

func main() {
	configPath := flag.String("config", "client.yaml", "path to client.yaml")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("mcclient: %v", err)
	}

	s := session.NewSession()

	s.OnState(func(ev proto.StateEvent) {
		if ev.Message != "" {
			log.Printf("mcclient: state -> %s (%s)", ev.State, ev.Message)
		} else {
			log.Printf("mcclient: state -> %s", ev.State)
		}
	})
	s.OnChat(func(ev proto.ChatEvent) {
		log.Printf("mcclient: chat: %s", ev.JSON)
	})
	s.OnMap(func(ev proto.MapEvent) {
		log.Printf("mcclient: map event kind=%d", ev.Kind)
	})

	addr := fmt.Sprintf("%s:%d", cfg.ServerAddress, cfg.ServerPort)
	if err := s.Connect(addr); err != nil {
		log.Fatalf("mcclient: %v", err)
	}
	if err := s.LoginAs(cfg.Nickname, cfg.ServerAddress, cfg.ServerPort); err != nil {
		log.Fatalf("mcclient: %v", err)
	}
	log.Printf("mcclient: connected to %s as %s", addr, cfg.Nickname)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := s.SendChatMessage(line); err != nil {
			log.Printf("mcclient: send failed: %v", err)
			break
		}
	}

	if err := s.Close(); err != nil {
		log.Printf("mcclient: closed with error: %v", err)
	}
}
