package main

import (
	"log"

	"bouncebox/internal/display"
)

// Window Constants
const (
	ScreenWidth  = 400
	ScreenHeight = 200
	WindowTitle  = "3350 Lab1"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bouncebox: ")

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// 1. Window Setup
	session, err := display.Open(ScreenWidth, ScreenHeight, WindowTitle)
	if err != nil {
		return err
	}
	defer session.Close()

	// 2. Initialize Game
	game := NewGame(session)

	// 3. Run Loop (returns nil on Escape)
	return session.Run(game)
}
