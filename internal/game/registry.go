package game

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
)

// Code alphabet skips 0/O/1/I to keep codes easy to read aloud.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const codeLength = 6

// Registry owns room creation and lookup. Codes are unique among active
// rooms only; a torn-down room frees its code for reuse.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// create generates a fresh code, builds a room for it, and registers it in
// one step so a code can never be handed out twice.
func (reg *Registry) create(build func(code string) *Room) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for attempts := 0; attempts < 10; attempts++ {
		code, err := randomCode()
		if err != nil {
			return nil, err
		}
		if _, taken := reg.rooms[code]; taken {
			continue
		}
		room := build(code)
		reg.rooms[code] = room
		return room, nil
	}
	return nil, fmt.Errorf("failed to generate unique room code")
}

// Find resolves a code to its room. Lookup is case-insensitive.
func (reg *Registry) Find(code string) (*Room, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[strings.ToUpper(code)]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Remove frees a room's code.
func (reg *Registry) Remove(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, strings.ToUpper(code))
}

// Len reports the number of active rooms.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

func randomCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(code), nil
}
