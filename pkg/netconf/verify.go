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

package netconf

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/telekom/wireless-transport-emulator/pkg/document"
)

const networkElementFilter = `<network-element xmlns="` + document.CoreModelNS + `"/>`

// ConfigGetter reads a configuration datastore.
type ConfigGetter interface {
	GetConfig(ctx context.Context, ds Datastore, subtree string) ([]byte, error)
}

type runningConfig struct {
	NetworkElements []struct {
		UUID string `xml:"uuid"`
		LTPs []struct {
			UUID string `xml:"uuid"`
			LP   struct {
				UUID string `xml:"uuid"`
			} `xml:"lp"`
		} `xml:"ltp"`
	} `xml:"network-element"`
}

// Report lists the differences between the generated and the served
// configuration of one network element.
type Report struct {
	Node       string
	Missing    []string
	Unexpected []string
	Diff       string
}

func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Unexpected) == 0
}

// Verify compares the ltp and lp identifiers of expected with the running
// datastore served by getter.
func Verify(ctx context.Context, getter ConfigGetter, expected *document.ConfigDocument) (*Report, error) {
	data, err := getter.GetConfig(ctx, Running, networkElementFilter)
	if err != nil {
		return nil, err
	}

	buf := bytes.Buffer{}
	buf.WriteString("<wrap>")
	buf.Write(data)
	buf.WriteString("</wrap>")

	var running runningConfig
	if err := xml.Unmarshal(buf.Bytes(), &running); err != nil {
		return nil, fmt.Errorf("failed to unmarshal running config: %w", err)
	}

	want := identifiers(expected)
	got := []string{}
	for _, ne := range running.NetworkElements {
		if ne.UUID != expected.NetworkElement.UUID {
			continue
		}
		for _, ltp := range ne.LTPs {
			got = append(got, ltp.UUID)
			if ltp.LP.UUID != "" {
				got = append(got, ltp.LP.UUID)
			}
		}
	}

	report := &Report{
		Node:       expected.NetworkElement.UUID,
		Missing:    difference(want, got),
		Unexpected: difference(got, want),
	}
	if !report.OK() {
		report.Diff = cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b }))
	}
	return report, nil
}

func identifiers(doc *document.ConfigDocument) []string {
	result := []string{}
	for _, ltp := range doc.NetworkElement.LTPs {
		result = append(result, ltp.UUID, ltp.LP.UUID)
	}
	return result
}

// difference returns the entries of a missing from b, in the order of a.
func difference(a, b []string) []string {
	present := make(map[string]struct{}, len(b))
	for _, s := range b {
		present[s] = struct{}{}
	}
	var result []string
	for _, s := range a {
		if _, ok := present[s]; !ok {
			result = append(result, s)
		}
	}
	return result
}
