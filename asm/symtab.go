// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "sort"

// A Symbol associates a label with an absolute address.
type Symbol struct {
	Name    string
	Address uint32
}

// A SymbolTable maps labels to addresses. Labels are unique; defining a
// label twice is an error.
type SymbolTable struct {
	addrs map[string]uint32
	order []string // labels in definition order
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{addrs: make(map[string]uint32)}
}

// Define adds a label to the table. It returns ErrDuplicateSymbol if the
// label already exists.
func (s *SymbolTable) Define(name string, addr uint32) error {
	if _, found := s.addrs[name]; found {
		return &Error{Token: name, Err: ErrDuplicateSymbol}
	}
	s.addrs[name] = addr
	s.order = append(s.order, name)
	return nil
}

// Lookup returns the address of a label.
func (s *SymbolTable) Lookup(name string) (addr uint32, ok bool) {
	addr, ok = s.addrs[name]
	return
}

// Len returns the number of symbols in the table.
func (s *SymbolTable) Len() int {
	return len(s.order)
}

// Symbols returns all symbols in the order they were defined.
func (s *SymbolTable) Symbols() []Symbol {
	syms := make([]Symbol, len(s.order))
	for i, name := range s.order {
		syms[i] = Symbol{Name: name, Address: s.addrs[name]}
	}
	return syms
}

// SortedByAddress returns all symbols sorted by address, then by name.
func (s *SymbolTable) SortedByAddress() []Symbol {
	syms := s.Symbols()
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].Address != syms[j].Address {
			return syms[i].Address < syms[j].Address
		}
		return syms[i].Name < syms[j].Name
	})
	return syms
}
