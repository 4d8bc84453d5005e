/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package netconf reads the datastores of running network elements.
package netconf

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/ssh"
	"nemith.io/netconf"
	ncssh "nemith.io/netconf/transport/ssh"
)

type Datastore string

const (
	Running Datastore = "running"
	Startup Datastore = "startup"
)

// GetConfig is the base protocol get-config operation with a subtree filter.
type GetConfig struct {
	XMLName xml.Name `xml:"get-config"`
	Source  Source   `xml:"source"`
	Filter  *Filter  `xml:"filter,omitempty"`
}

type Source struct {
	Inner []byte `xml:",innerxml"`
}

type Filter struct {
	Type    string `xml:"type,attr"`
	Subtree []byte `xml:",innerxml"`
}

//nolint:revive
type GetConfigReply struct {
	netconf.RPCReply
	Data struct {
		Payload []byte `xml:",innerxml"`
	} `xml:"data"`
}

// Client holds one NETCONF over SSH session to a network element.
type Client struct {
	session   *netconf.Session
	timeout   time.Duration
	sshConfig *ssh.ClientConfig
	address   string
}

func NewClient(address, user, pwd string, timeout time.Duration) *Client {
	return &Client{
		address: address,
		timeout: timeout,
		sshConfig: &ssh.ClientConfig{
			User: user,
			Auth: []ssh.AuthMethod{
				ssh.Password(pwd),
			},
			HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec
		},
	}
}

func (c *Client) Open(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.Close(ctx)

	transport, err := ncssh.Dial(ctx, "tcp", c.address, c.sshConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.address, err)
	}
	c.session, err = netconf.NewSession(transport)
	if err != nil {
		return fmt.Errorf("failed to open netconf session on %s: %w", c.address, err)
	}
	return nil
}

func (c *Client) Close(ctx context.Context) {
	if c.session != nil {
		c.session.Close(ctx)
		c.session = nil
	}
}

// Send executes req and decodes the reply into rep. A session closed by the
// server is reopened once.
func (c *Client) Send(ctx context.Context, req, rep any) error {
	if c.session == nil {
		if err := c.Open(ctx); err != nil {
			return fmt.Errorf("failed to open netconf session: %w", err)
		}
	}

	for i := 0; i < 2; i++ {
		subctx, cancel := context.WithTimeout(ctx, c.timeout)
		err := c.session.Exec(subctx, req, rep)
		cancel()

		if err == nil {
			return nil
		} else if !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to send netconf message: %w", err)
		}

		if i == 0 {
			if err := c.Open(ctx); err != nil {
				return fmt.Errorf("failed to re-open netconf session: %w", err)
			}
		}
	}

	return fmt.Errorf("all netconf send attempts to %s failed with EOF", c.address)
}

// NewGetConfig builds a get-config request of ds, filtered by subtree when
// it is not empty.
func NewGetConfig(ds Datastore, subtree string) *GetConfig {
	req := &GetConfig{Source: Source{Inner: []byte("<" + string(ds) + "/>")}}
	if subtree != "" {
		req.Filter = &Filter{Type: "subtree", Subtree: []byte(subtree)}
	}
	return req
}

func (c *Client) GetConfig(ctx context.Context, ds Datastore, subtree string) ([]byte, error) {
	var rep GetConfigReply
	if err := c.Send(ctx, NewGetConfig(ds, subtree), &rep); err != nil {
		return nil, fmt.Errorf("failed to get netconf config ds=%s: %w", ds, err)
	}
	return rep.Data.Payload, nil
}
