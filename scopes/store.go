package scopes

import (
	"errors"
	"maps"

	"github.com/reusee/terse/tokens"
	"github.com/reusee/terse/values"
)

var ErrPopGlobal = errors.New("cannot destroy the global scope")

// Store holds one variable scope per active call, global first,
// and the function table filled once by Register.
type Store struct {
	scopes    []map[string]values.Value
	functions map[string]tokens.Pos
}

func New() *Store {
	return &Store{
		scopes: []map[string]values.Value{
			make(map[string]values.Value),
		},
		functions: make(map[string]tokens.Pos),
	}
}

// Register records every function definition in the tokenizer's source.
func (s *Store) Register(tokenizer *tokens.Tokenizer) error {
	for def, err := range tokenizer.Definitions() {
		if err != nil {
			return err
		}
		s.functions[def.Name] = def.Body
	}
	return nil
}

// Get searches from the innermost scope outwards.
func (s *Store) Get(name string) (values.Value, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if v, ok := s.scopes[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds in the innermost scope, shadowing any outer binding.
func (s *Store) Set(name string, value values.Value) {
	s.scopes[len(s.scopes)-1][name] = value
}

func (s *Store) Push() {
	s.scopes = append(s.scopes, make(map[string]values.Value))
}

func (s *Store) Pop() error {
	if len(s.scopes) <= 1 {
		return ErrPopGlobal
	}
	s.scopes[len(s.scopes)-1] = nil
	s.scopes = s.scopes[:len(s.scopes)-1]
	return nil
}

func (s *Store) Depth() int {
	return len(s.scopes)
}

func (s *Store) Function(name string) (tokens.Pos, bool) {
	pos, ok := s.functions[name]
	return pos, ok
}

// Scopes returns copies of all scopes, global first.
func (s *Store) Scopes() []map[string]values.Value {
	ret := make([]map[string]values.Value, 0, len(s.scopes))
	for _, scope := range s.scopes {
		ret = append(ret, maps.Clone(scope))
	}
	return ret
}

func (s *Store) Functions() map[string]tokens.Pos {
	return maps.Clone(s.functions)
}
