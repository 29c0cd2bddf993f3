// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package broadcaster

import (
	"encoding/hex"
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/tagchain/tagd/fault"
)

// the request sent to the node
type broadcastRequest struct {
	Method string   `json:"method"`
	Params []string `json:"params"`
}

// the expected reply
type broadcastReply struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason"`
}

// the background worker draining the submission queue
type sender struct {
	socket *zmq.Socket
}

func (s *sender) Run(args interface{}, shutdown <-chan struct{}) {
	log := globalData.log

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case job := <-globalData.queue:
			err := s.send(job)
			if nil != err {
				globalData.failed.Increment()
				log.Errorf("broadcast: %q failed: %s", job.txId, err)
			} else {
				globalData.succeeded.Increment()
				log.Infof("broadcast: %q accepted", job.txId)
			}
			job.reply <- err
		}
	}

	s.disconnect()
}

// forward one signed transaction and wait for the node's verdict
func (s *sender) send(job submission) error {
	socket, err := s.connect()
	if nil != err {
		return err
	}

	request := broadcastRequest{
		Method: "broadcast",
		Params: []string{hex.EncodeToString(job.packed)},
	}
	data, err := json.Marshal(request)
	if nil != err {
		return err
	}

	_, err = socket.SendBytes(data, 0)
	if nil != err {
		s.disconnect()
		return err
	}

	replyData, err := socket.RecvBytes(0)
	if nil != err {
		// a REQ socket cannot be reused after a failed cycle
		s.disconnect()
		return err
	}

	return parseReply(replyData)
}

// lazily connect the REQ socket
func (s *sender) connect() (*zmq.Socket, error) {
	if nil != s.socket {
		return s.socket, nil
	}

	socket, err := zmq.NewSocket(zmq.REQ)
	if nil != err {
		return nil, err
	}

	err = socket.SetLinger(0)
	if nil != err {
		socket.Close()
		return nil, err
	}
	err = socket.SetSndtimeo(globalData.timeout)
	if nil != err {
		socket.Close()
		return nil, err
	}
	err = socket.SetRcvtimeo(globalData.timeout)
	if nil != err {
		socket.Close()
		return nil, err
	}

	err = socket.Connect(globalData.node)
	if nil != err {
		socket.Close()
		return nil, err
	}

	s.socket = socket
	return socket, nil
}

func (s *sender) disconnect() {
	if nil != s.socket {
		s.socket.Close()
		s.socket = nil
	}
}

// interpret the node's reply: success iff it parses and reports ok
func parseReply(data []byte) error {
	var reply broadcastReply
	err := json.Unmarshal(data, &reply)
	if nil != err {
		return fault.ErrWrongNodeReply
	}
	if !reply.OK {
		return fault.ErrBroadcastFailed
	}
	return nil
}
