// Package odl registers emulated network elements as NETCONF nodes with an
// OpenDaylight controller.
package odl

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/telekom/wireless-transport-emulator/pkg/config"
)

const (
	nodePath       = "/restconf/config/network-topology:network-topology/topology/topology-netconf/node/"
	keepaliveDelay = 120
)

// NetconfNode is the controller's netconf-node-topology entry.
type NetconfNode struct {
	XMLName        xml.Name `xml:"urn:TBD:params:xml:ns:yang:network-topology node"`
	NodeID         string   `xml:"node-id"`
	Host           string   `xml:"urn:opendaylight:netconf-node-topology host"`
	Port           int      `xml:"urn:opendaylight:netconf-node-topology port"`
	Username       string   `xml:"urn:opendaylight:netconf-node-topology username"`
	Password       string   `xml:"urn:opendaylight:netconf-node-topology password"`
	TCPOnly        bool     `xml:"urn:opendaylight:netconf-node-topology tcp-only"`
	KeepaliveDelay int      `xml:"urn:opendaylight:netconf-node-topology keepalive-delay"`
}

// Client talks RESTCONF to the controller.
type Client struct {
	baseURL    string
	controller config.Controller
	netconf    config.Netconf
	httpClient *http.Client
	logger     logr.Logger
}

func NewClient(controller config.Controller, netconf config.Netconf, logger logr.Logger) *Client {
	return &Client{
		baseURL:    "http://" + controller.IPAddress + ":" + strconv.Itoa(controller.Port),
		controller: controller,
		netconf:    netconf,
		httpClient: &http.Client{Timeout: netconf.Timeout},
		logger:     logger.WithName("odl"),
	}
}

func (c *Client) nodeURL(nodeID string) string {
	return c.baseURL + nodePath + url.PathEscape(nodeID)
}

// Register announces the NETCONF server of nodeID reachable at host.
func (c *Client) Register(ctx context.Context, nodeID, host string) error {
	payload, err := xml.Marshal(&NetconfNode{
		NodeID:         nodeID,
		Host:           host,
		Port:           c.netconf.Port,
		Username:       c.netconf.Username,
		Password:       c.netconf.Password,
		KeepaliveDelay: keepaliveDelay,
	})
	if err != nil {
		return fmt.Errorf("error marshalling registration of %s: %w", nodeID, err)
	}
	if err := c.do(ctx, http.MethodPut, c.nodeURL(nodeID), payload); err != nil {
		return fmt.Errorf("error registering %s: %w", nodeID, err)
	}
	c.logger.Info("registered network element", "node", nodeID, "host", host)
	return nil
}

// Unregister removes nodeID from the controller.
func (c *Client) Unregister(ctx context.Context, nodeID string) error {
	if err := c.do(ctx, http.MethodDelete, c.nodeURL(nodeID), nil); err != nil {
		return fmt.Errorf("error unregistering %s: %w", nodeID, err)
	}
	c.logger.Info("unregistered network element", "node", nodeID)
	return nil
}

func (c *Client) do(ctx context.Context, method, target string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set("Cache-Control", "no-cache")
	req.SetBasicAuth(c.controller.Username, c.controller.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > http.StatusAlreadyReported {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096)) //nolint:mnd
		return fmt.Errorf("controller answered %s: %s", resp.Status, bytes.TrimSpace(msg))
	}
	return nil
}
