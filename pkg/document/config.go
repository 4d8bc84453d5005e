// Package document renders the configuration and state documents of a
// network element from its termination point graph.
package document

import (
	"sort"
	"time"

	"github.com/telekom/wireless-transport-emulator/api/v1alpha1"
	"github.com/telekom/wireless-transport-emulator/pkg/model"
)

const (
	localIDValueName   = "vLocalId"
	nameValueName      = "vName"
	labelValueName     = "vLabel"
	extensionValueName = "vExtension"

	forwardingDomainUUID = "eth-switch"
	segmentID            = 1
)

// Generator renders documents. The zero value uses the wall clock and the
// default notification period.
type Generator struct {
	// Clock returns the reference time of performance data.
	Clock func() time.Time
	// NotificationPeriod is emitted as notification timeout in seconds.
	NotificationPeriod int
}

const (
	// NEType is announced by every network element. The declared node type
	// only selects the container image.
	NEType                    = "Milkyway"
	defaultNotificationPeriod = 10
)

func (g *Generator) now() time.Time {
	if g.Clock != nil {
		return g.Clock().UTC()
	}
	return time.Now().UTC()
}

func core(uuid string, extensions ...NameValue) Core {
	if len(extensions) == 0 {
		extensions = []NameValue{{ValueName: extensionValueName, Value: uuid}}
	}
	return Core{
		UUID:       uuid,
		LocalID:    NameValue{ValueName: localIDValueName, Value: uuid},
		Name:       NameValue{ValueName: nameValueName, Value: uuid},
		Label:      NameValue{ValueName: labelValueName, Value: uuid},
		Extensions: extensions,
	}
}

// Config renders the configuration document of ne.
func (g *Generator) Config(ne *model.NetworkElement) *ConfigDocument {
	doc := &ConfigDocument{
		NetworkElement: NetworkElementConfig{
			Core:                  core(ne.UUID, networkElementExtensions(ne)...),
			AdministrativeControl: Unlock,
			LifecycleState:        Installed,
			FD: FDConfig{
				UUID:              forwardingDomainUUID,
				LayerProtocolName: model.LayerETH.ProtocolName(),
			},
		},
	}

	for _, tp := range ne.TerminationPoints() {
		doc.NetworkElement.LTPs = append(doc.NetworkElement.LTPs, ltpConfig(tp))

		switch tp.Layer {
		case model.LayerMWPS:
			doc.AirInterfaces = append(doc.AirInterfaces, AirInterfacePacConfig{
				LayerProtocol: tp.LP(),
				Configuration: AirInterfaceConfiguration{
					RadioSignalID:    tp.RadioSignalID,
					CryptographicKey: CryptographicKeyMask,
					ProblemSeverity:  problemSeverities(tp),
				},
			})
		case model.LayerMWS:
			doc.Structures = append(doc.Structures, StructurePacConfig{
				LayerProtocol: tp.LP(),
				Configuration: StructureConfiguration{ProblemSeverity: problemSeverities(tp)},
			})
		case model.LayerETC:
			segments := make([]SegmentID, 0, len(tp.Servers))
			for _, server := range tp.Servers {
				segments = append(segments, SegmentID{StructureIDRef: server.LP(), SegmentIDRef: segmentID})
			}
			doc.Containers = append(doc.Containers, ContainerPacConfig{
				LayerProtocol: tp.LP(),
				Configuration: ContainerConfiguration{
					CryptographicKey: CryptographicKeyMask,
					ProblemSeverity:  problemSeverities(tp),
					Segments:         segments,
				},
			})
		case model.LayerETH:
			doc.EthernetPacs = append(doc.EthernetPacs, EthernetPacConfig{
				LayerProtocol: tp.LP(),
				Configuration: EthernetConfiguration{VLANID: tp.VLANID},
			})
		}
	}

	for _, xconn := range ne.CrossConnects() {
		fc := ForwardingConstructConfig{
			Core:                  core(xconn.UUID()),
			AdministrativeControl: Unlock,
			LifecycleState:        Installed,
			LayerProtocolName:     model.LayerETH.ProtocolName(),
			FCRoute:               xconn.Route,
		}
		for i, end := range xconn.Ends {
			fc.FCPorts = append(fc.FCPorts, FCPortConfig{
				Core:                  core(xconn.PortUUID(i)),
				AdministrativeControl: Unlock,
				LifecycleState:        Installed,
				LTP:                   end.LTP(),
			})
		}
		doc.ForwardingConstructs = append(doc.ForwardingConstructs, fc)
	}
	return doc
}

func ltpConfig(tp *model.TerminationPoint) LTPConfig {
	ltp := LTPConfig{
		Core:                  core(tp.LTP()),
		AdministrativeControl: Unlock,
		LifecycleState:        Installed,
		PhysicalPortReference: tp.PhysicalPortReference,
		LP: LPConfig{
			Core:                  core(tp.LP()),
			AdministrativeControl: Unlock,
			LifecycleState:        Installed,
			LayerProtocolName:     tp.Layer.ProtocolName(),
			ConditionalPackage:    tp.ConditionalPackage,
		},
	}
	for _, server := range tp.Servers {
		ltp.ServerLTPs = append(ltp.ServerLTPs, server.LTP())
	}
	for _, client := range tp.Clients {
		ltp.ClientLTPs = append(ltp.ClientLTPs, client.LTP())
	}
	return ltp
}

func problemSeverities(tp *model.TerminationPoint) []ProblemKindSeverity {
	result := make([]ProblemKindSeverity, 0, len(tp.SupportedAlarms))
	for _, alarm := range tp.SupportedAlarms {
		result = append(result, ProblemKindSeverity{Name: alarm, Severity: ProblemSeverityWarning})
	}
	return result
}

func networkElementExtensions(ne *model.NetworkElement) []NameValue {
	ip := ne.ManagementIP.String()
	extensions := []NameValue{
		{ValueName: "rootEquipment", Value: "outdoorUnit, indoorUnit"},
		{ValueName: "neIpAddress", Value: ip},
		{ValueName: "neType", Value: NEType},
		{ValueName: "webUri", Value: "https://" + ip + "/"},
		{ValueName: "cliAddress", Value: "cli@" + ip},
		{ValueName: "appCommand", Value: ""},
	}
	return append(extensions, ptpClockExtensions(ne.PTPClock)...)
}

// ptpClockExtensions flattens the clock block into extensions sorted by key.
func ptpClockExtensions(clock map[string]v1alpha1.Scalar) []NameValue {
	keys := make([]string, 0, len(clock))
	for key := range clock {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]NameValue, 0, len(keys))
	for _, key := range keys {
		result = append(result, NameValue{ValueName: "ptp-clock/" + key, Value: clock[key].String()})
	}
	return result
}
