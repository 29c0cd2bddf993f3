// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run processes in the background and stop them
// as a group
package background

// Process - a single background process
//
// Run must return when the shutdown channel is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - the list of processes to start
type Processes []Process

type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle to a started set of background processes
type T struct {
	s []shutdown
}

// Start - start up a set of background processes
//
// all processes receive the same arguments value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.s = make([]shutdown, len(processes))

	// start each background
	for i, p := range processes {
		s := make(chan struct{})
		f := make(chan struct{})
		register.s[i].shutdown = s
		register.s[i].finished = f
		go func(p Process, s <-chan struct{}, f chan<- struct{}) {
			p.Run(args, s)
			close(f)
		}(p, s, f)
	}
	return register
}

// Stop - stop the set of background processes and wait for them
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, s := range t.s {
		close(s.shutdown)
	}

	// wait for finished
	for _, s := range t.s {
		<-s.finished
	}
}
