package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringStateHash(t *testing.T) {
	assert.Equal(t, "user_login", StringState("user_login").Hash())
}

func TestJSONStateHashIsOrderIndependent(t *testing.T) {
	a := JSONState{Value: map[string]int{"x": 1, "y": 2, "z": 3}}
	b := JSONState{Value: map[string]int{"z": 3, "x": 1, "y": 2}}
	assert.Equal(t, a.Hash(), b.Hash())

	c := JSONState{Value: map[string]int{"x": 1, "y": 2, "z": 4}}
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestJSONStateEqualFormsConflate(t *testing.T) {
	// different caller values with the same canonical form are the same
	// state by design
	type wallet struct {
		Balance int `json:"balance"`
	}
	type account struct {
		Balance int `json:"balance"`
	}
	a := JSONState{Value: wallet{Balance: 10}}
	b := JSONState{Value: account{Balance: 10}}
	assert.Equal(t, a.Hash(), b.Hash())
}
