package document

import (
	"encoding/xml"
)

const (
	NetconfNamespace  = "urn:ietf:params:xml:ns:netconf:base:1.0"
	CoreModelNS       = "urn:onf:params:xml:ns:yang:core-model"
	MicrowaveModelNS  = "urn:onf:params:xml:ns:yang:microwave-model"
	EthernetPackageNS = "urn:onf:params:xml:ns:yang:onf-ethernet-conditional-packages"
)

type AdministrativeControl string
type LifecycleState string
type OperationalState string
type AdministrativeState string

const (
	Unlock    AdministrativeControl = "UNLOCK"
	Installed LifecycleState        = "INSTALLED"
	Enabled   OperationalState      = "ENABLED"
	Unlocked  AdministrativeState   = "UNLOCKED"

	ProblemSeverityWarning = "warning"
	CryptographicKeyMask   = "********"
)

// NameValue is the core-model name/value pair used for ids, names, labels
// and extensions.
type NameValue struct {
	ValueName string `xml:"value-name"`
	Value     string `xml:"value"`
}

// Core holds the attributes shared by every core-model config entity.
type Core struct {
	UUID       string      `xml:"uuid"`
	LocalID    NameValue   `xml:"local-id"`
	Name       NameValue   `xml:"name"`
	Label      NameValue   `xml:"label"`
	Extensions []NameValue `xml:"extension"`
}

// Config documents.

type ConfigDocument struct {
	XMLName              xml.Name                    `xml:"urn:ietf:params:xml:ns:netconf:base:1.0 config"`
	NetworkElement       NetworkElementConfig        `xml:"network-element"`
	AirInterfaces        []AirInterfacePacConfig     `xml:"mw-air-interface-pac,omitempty"`
	Structures           []StructurePacConfig        `xml:"mw-pure-ethernet-structure-pac,omitempty"`
	Containers           []ContainerPacConfig        `xml:"mw-ethernet-container-pac,omitempty"`
	EthernetPacs         []EthernetPacConfig         `xml:"ethernet-pac,omitempty"`
	ForwardingConstructs []ForwardingConstructConfig `xml:"forwarding-construct,omitempty"`
}

type NetworkElementConfig struct {
	XMLName xml.Name `xml:"urn:onf:params:xml:ns:yang:core-model network-element"`
	Core
	AdministrativeControl AdministrativeControl `xml:"administrative-control"`
	LifecycleState        LifecycleState        `xml:"lifecycle-state"`
	FD                    FDConfig              `xml:"fd"`
	LTPs                  []LTPConfig           `xml:"ltp,omitempty"`
}

type FDConfig struct {
	UUID              string `xml:"uuid"`
	LayerProtocolName string `xml:"layer-protocol-name"`
}

type LTPConfig struct {
	Core
	AdministrativeControl AdministrativeControl `xml:"administrative-control"`
	LifecycleState        LifecycleState        `xml:"lifecycle-state"`
	ServerLTPs            []string              `xml:"server-ltp,omitempty"`
	ClientLTPs            []string              `xml:"client-ltp,omitempty"`
	PhysicalPortReference string                `xml:"physical-port-reference,omitempty"`
	LP                    LPConfig              `xml:"lp"`
}

type LPConfig struct {
	Core
	AdministrativeControl AdministrativeControl `xml:"administrative-control"`
	LifecycleState        LifecycleState        `xml:"lifecycle-state"`
	LayerProtocolName     string                `xml:"layer-protocol-name"`
	ConditionalPackage    string                `xml:"conditional-package,omitempty"`
}

type ProblemKindSeverity struct {
	Name     string `xml:"problem-kind-name"`
	Severity string `xml:"problem-kind-severity"`
}

type AirInterfacePacConfig struct {
	XMLName       xml.Name                  `xml:"urn:onf:params:xml:ns:yang:microwave-model mw-air-interface-pac"`
	LayerProtocol string                    `xml:"layer-protocol"`
	Configuration AirInterfaceConfiguration `xml:"air-interface-configuration"`
}

type AirInterfaceConfiguration struct {
	RadioSignalID    string                `xml:"radio-signal-id,omitempty"`
	CryptographicKey string                `xml:"cryptographic-key"`
	ProblemSeverity  []ProblemKindSeverity `xml:"problem-kind-severity-list"`
}

type StructurePacConfig struct {
	XMLName       xml.Name               `xml:"urn:onf:params:xml:ns:yang:microwave-model mw-pure-ethernet-structure-pac"`
	LayerProtocol string                 `xml:"layer-protocol"`
	Configuration StructureConfiguration `xml:"pure-ethernet-structure-configuration"`
}

type StructureConfiguration struct {
	ProblemSeverity []ProblemKindSeverity `xml:"problem-kind-severity-list"`
}

type ContainerPacConfig struct {
	XMLName       xml.Name               `xml:"urn:onf:params:xml:ns:yang:microwave-model mw-ethernet-container-pac"`
	LayerProtocol string                 `xml:"layer-protocol"`
	Configuration ContainerConfiguration `xml:"ethernet-container-configuration"`
}

type ContainerConfiguration struct {
	CryptographicKey string                `xml:"cryptographic-key"`
	ProblemSeverity  []ProblemKindSeverity `xml:"problem-kind-severity-list"`
	Segments         []SegmentID           `xml:"segments-id-list"`
}

type SegmentID struct {
	StructureIDRef string `xml:"structure-id-ref"`
	SegmentIDRef   int    `xml:"segment-id-ref"`
}

type EthernetPacConfig struct {
	XMLName       xml.Name              `xml:"urn:onf:params:xml:ns:yang:onf-ethernet-conditional-packages ethernet-pac"`
	LayerProtocol string                `xml:"layer-protocol"`
	Configuration EthernetConfiguration `xml:"ethernet-configuration"`
}

type EthernetConfiguration struct {
	VLANID string `xml:"vlan-id,omitempty"`
}

type ForwardingConstructConfig struct {
	XMLName xml.Name `xml:"urn:onf:params:xml:ns:yang:core-model forwarding-construct"`
	Core
	AdministrativeControl AdministrativeControl `xml:"administrative-control"`
	LifecycleState        LifecycleState        `xml:"lifecycle-state"`
	LayerProtocolName     string                `xml:"layer-protocol-name"`
	FCRoute               string                `xml:"fc-route,omitempty"`
	FCPorts               []FCPortConfig        `xml:"fc-port"`
}

type FCPortConfig struct {
	Core
	AdministrativeControl AdministrativeControl `xml:"administrative-control"`
	LifecycleState        LifecycleState        `xml:"lifecycle-state"`
	LTP                   string                `xml:"ltp"`
}

// State documents.

// Status holds the state attributes shared by every entity.
type Status struct {
	OperationalState    OperationalState    `xml:"operational-state"`
	AdministrativeState AdministrativeState `xml:"administrative-state"`
}

type StateDocument struct {
	XMLName              xml.Name                   `xml:"microwave-model-status"`
	NetworkElement       NetworkElementState        `xml:"network-element"`
	AirInterfaces        []AirInterfacePacState     `xml:"mw-air-interface-pac,omitempty"`
	Structures           []StructurePacState        `xml:"mw-pure-ethernet-structure-pac,omitempty"`
	Containers           []ContainerPacState        `xml:"mw-ethernet-container-pac,omitempty"`
	EthernetPacs         []EthernetPacState         `xml:"ethernet-pac,omitempty"`
	ForwardingConstructs []ForwardingConstructState `xml:"forwarding-construct,omitempty"`
	Notifications        Notifications              `xml:"notifications"`
}

type NetworkElementState struct {
	UUID string `xml:"uuid"`
	Status
	LTPs []LTPState `xml:"ltp,omitempty"`
}

type LTPState struct {
	UUID string `xml:"uuid"`
	Status
	LP LPState `xml:"lp"`
}

type LPState struct {
	UUID string `xml:"uuid"`
	Status
}

type CurrentProblem struct {
	SequenceNumber int    `xml:"sequence-number"`
	ProblemName    string `xml:"problem-name"`
}

type CurrentProblems struct {
	Problems []CurrentProblem `xml:"current-problem-list"`
}

type CurrentPerformanceData struct {
	ScannerID           int    `xml:"scanner-id"`
	GranularityPeriod   string `xml:"granularity-period"`
	SuspectIntervalFlag bool   `xml:"suspect-interval-flag"`
	Timestamp           string `xml:"timestamp"`
}

type CurrentPerformance struct {
	Data []CurrentPerformanceData `xml:"current-performance-data-list"`
}

type HistoricalPerformanceData struct {
	HistoryDataID       int    `xml:"history-data-id"`
	GranularityPeriod   string `xml:"granularity-period"`
	SuspectIntervalFlag bool   `xml:"suspect-interval-flag"`
	PeriodEndTime       string `xml:"period-end-time"`
}

type HistoricalPerformances struct {
	Data []HistoricalPerformanceData `xml:"historical-performance-data-list"`
}

type AirInterfacePacState struct {
	XMLName                xml.Name               `xml:"mw-air-interface-pac"`
	LayerProtocol          string                 `xml:"layer-protocol"`
	Capability             AirInterfaceCapability `xml:"air-interface-capability"`
	CurrentProblems        CurrentProblems        `xml:"air-interface-current-problems"`
	CurrentPerformance     CurrentPerformance     `xml:"air-interface-current-performance"`
	HistoricalPerformances HistoricalPerformances `xml:"air-interface-historical-performances"`
}

type AirInterfaceCapability struct {
	SupportedAlarms       string                 `xml:"supported-alarms"`
	SupportedChannelPlans []SupportedChannelPlan `xml:"supported-channel-plan-list"`
}

type SupportedChannelPlan struct {
	Plan              string   `xml:"supported-channel-plan"`
	TransmissionModes []string `xml:"transmission-mode-list>transmission-mode-id"`
}

type StructurePacState struct {
	XMLName                xml.Name               `xml:"mw-pure-ethernet-structure-pac"`
	LayerProtocol          string                 `xml:"layer-protocol"`
	Capability             StructureCapability    `xml:"pure-ethernet-structure-capability"`
	CurrentProblems        CurrentProblems        `xml:"pure-ethernet-structure-current-problems"`
	CurrentPerformance     CurrentPerformance     `xml:"pure-ethernet-structure-current-performance"`
	HistoricalPerformances HistoricalPerformances `xml:"pure-ethernet-structure-historical-performances"`
}

type StructureCapability struct {
	StructureID     string `xml:"structure-id"`
	SupportedAlarms string `xml:"supported-alarms"`
}

type ContainerPacState struct {
	XMLName                xml.Name               `xml:"mw-ethernet-container-pac"`
	LayerProtocol          string                 `xml:"layer-protocol"`
	Capability             ContainerCapability    `xml:"ethernet-container-capability"`
	CurrentProblems        CurrentProblems        `xml:"ethernet-container-current-problems"`
	CurrentPerformance     CurrentPerformance     `xml:"ethernet-container-current-performance"`
	HistoricalPerformances HistoricalPerformances `xml:"ethernet-container-historical-performances"`
}

type ContainerCapability struct {
	SupportedAlarms string `xml:"supported-alarms"`
}

type EthernetPacState struct {
	XMLName       xml.Name       `xml:"ethernet-pac"`
	LayerProtocol string         `xml:"layer-protocol"`
	Status        EthernetStatus `xml:"ethernet-status"`
}

type EthernetStatus struct {
	VLANID string `xml:"vlan-id,omitempty"`
}

type ForwardingConstructState struct {
	UUID    string        `xml:"uuid"`
	FCPorts []FCPortState `xml:"fc-port"`
	Status
}

type FCPortState struct {
	UUID string `xml:"uuid"`
	Status
}

type Notifications struct {
	Timeout int `xml:"timeout"`
}
