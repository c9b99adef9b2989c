// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"log/slog"
)

// State is a stage of a single vmlaunch invocation.
type State int

// States in the order they are passed. [StateTerminal] may be entered from
// any other state.
const (
	StateInit State = iota
	StateDetecting
	StateValidating
	StateConfiguring
	StateConfirming
	StateLaunched
	StateTerminal
)

var stateNames = [...]string{
	StateInit:        "init",
	StateDetecting:   "detecting",
	StateValidating:  "validating",
	StateConfiguring: "configuring",
	StateConfirming:  "confirming",
	StateLaunched:    "launched",
	StateTerminal:    "terminal",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

type stateMachine struct {
	state State
}

// advance moves to the given state. It panics on backward transitions.
func (m *stateMachine) advance(next State) {
	if next <= m.state {
		panic(fmt.Sprintf("invalid state transition: %s -> %s", m.state, next))
	}

	slog.Debug("State transition",
		slog.String("from", m.state.String()),
		slog.String("to", next.String()),
	)

	m.state = next
}

// terminate moves to [StateTerminal] unless already there.
func (m *stateMachine) terminate() {
	if m.state != StateTerminal {
		m.advance(StateTerminal)
	}
}
