package document

import (
	"time"

	"github.com/telekom/wireless-transport-emulator/pkg/model"
)

const (
	// One decimal of the second, like the NETCONF server's own timestamps.
	timestampLayout = "2006-01-02T15:04:05.0Z"

	period15Min  = "period-15min"
	period24Hour = "period-24hours"

	historical15MinIntervals = 96
	historical24HourDays     = 7

	channelPlan      = "plan_1"
	transmissionMode = "transmission_mode_1"
)

func defaultStatus() Status {
	return Status{OperationalState: Enabled, AdministrativeState: Unlocked}
}

// State renders the state document of ne.
func (g *Generator) State(ne *model.NetworkElement) *StateDocument {
	now := g.now()
	period := g.NotificationPeriod
	if period <= 0 {
		period = defaultNotificationPeriod
	}

	doc := &StateDocument{
		NetworkElement: NetworkElementState{UUID: ne.UUID, Status: defaultStatus()},
		Notifications:  Notifications{Timeout: period},
	}

	for _, tp := range ne.TerminationPoints() {
		doc.NetworkElement.LTPs = append(doc.NetworkElement.LTPs, LTPState{
			UUID:   tp.LTP(),
			Status: defaultStatus(),
			LP:     LPState{UUID: tp.LP(), Status: defaultStatus()},
		})

		switch tp.Layer {
		case model.LayerMWPS:
			doc.AirInterfaces = append(doc.AirInterfaces, AirInterfacePacState{
				LayerProtocol: tp.LP(),
				Capability: AirInterfaceCapability{
					SupportedAlarms: tp.AlarmList(),
					SupportedChannelPlans: []SupportedChannelPlan{{
						Plan:              channelPlan,
						TransmissionModes: []string{transmissionMode},
					}},
				},
				CurrentProblems:        currentProblems(tp),
				CurrentPerformance:     currentPerformance(now),
				HistoricalPerformances: historicalPerformances(now),
			})
		case model.LayerMWS:
			doc.Structures = append(doc.Structures, StructurePacState{
				LayerProtocol: tp.LP(),
				Capability: StructureCapability{
					StructureID:     tp.LP(),
					SupportedAlarms: tp.AlarmList(),
				},
				CurrentProblems:        currentProblems(tp),
				CurrentPerformance:     currentPerformance(now),
				HistoricalPerformances: historicalPerformances(now),
			})
		case model.LayerETC:
			doc.Containers = append(doc.Containers, ContainerPacState{
				LayerProtocol:          tp.LP(),
				Capability:             ContainerCapability{SupportedAlarms: tp.AlarmList()},
				CurrentProblems:        currentProblems(tp),
				CurrentPerformance:     currentPerformance(now),
				HistoricalPerformances: historicalPerformances(now),
			})
		case model.LayerETH:
			doc.EthernetPacs = append(doc.EthernetPacs, EthernetPacState{
				LayerProtocol: tp.LP(),
				Status:        EthernetStatus{VLANID: tp.VLANID},
			})
		}
	}

	for _, xconn := range ne.CrossConnects() {
		fc := ForwardingConstructState{UUID: xconn.UUID(), Status: defaultStatus()}
		for i := range xconn.Ends {
			fc.FCPorts = append(fc.FCPorts, FCPortState{UUID: xconn.PortUUID(i), Status: defaultStatus()})
		}
		doc.ForwardingConstructs = append(doc.ForwardingConstructs, fc)
	}
	return doc
}

// currentProblems raises the first supported alarm.
func currentProblems(tp *model.TerminationPoint) CurrentProblems {
	if len(tp.SupportedAlarms) == 0 {
		return CurrentProblems{}
	}
	return CurrentProblems{Problems: []CurrentProblem{{SequenceNumber: 1, ProblemName: tp.SupportedAlarms[0]}}}
}

func currentPerformance(now time.Time) CurrentPerformance {
	stamp := now.Format(timestampLayout)
	return CurrentPerformance{Data: []CurrentPerformanceData{
		{ScannerID: 1, GranularityPeriod: period15Min, Timestamp: stamp},
		{ScannerID: 2, GranularityPeriod: period24Hour, Timestamp: stamp}, //nolint:mnd
	}}
}

// historicalPerformances returns one entry per 15 minute interval of the
// last day followed by one entry per day of the last week.
func historicalPerformances(now time.Time) HistoricalPerformances {
	data := make([]HistoricalPerformanceData, 0, historical15MinIntervals+historical24HourDays)
	for i := 0; i < historical15MinIntervals; i++ {
		data = append(data, HistoricalPerformanceData{
			HistoryDataID:     i,
			GranularityPeriod: period15Min,
			PeriodEndTime:     now.Add(-time.Duration(i) * 15 * time.Minute).Format(timestampLayout),
		})
	}
	for i := 0; i < historical24HourDays; i++ {
		data = append(data, HistoricalPerformanceData{
			HistoryDataID:     historical15MinIntervals + i,
			GranularityPeriod: period24Hour,
			PeriodEndTime:     now.AddDate(0, 0, -i).Format(timestampLayout),
		})
	}
	return HistoricalPerformances{Data: data}
}
