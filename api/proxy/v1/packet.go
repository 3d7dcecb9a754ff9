package proxyv1

import "fmt"

// DataType enumerates the sample encodings a Packet's payload may carry.
// UNKNOWN is the zero value and is never a valid admitted packet's type.
type DataType int32

const (
	DataType_UNKNOWN DataType = 0
	DataType_INT32   DataType = 1
	DataType_FLOAT32 DataType = 2
	DataType_FLOAT64 DataType = 3
	DataType_STEIM1  DataType = 4
	DataType_STEIM2  DataType = 5
	DataType_ASCII   DataType = 6
)

var dataTypeNames = map[DataType]string{
	DataType_UNKNOWN: "UNKNOWN",
	DataType_INT32:   "INT32",
	DataType_FLOAT32: "FLOAT32",
	DataType_FLOAT64: "FLOAT64",
	DataType_STEIM1:  "STEIM1",
	DataType_STEIM2:  "STEIM2",
	DataType_ASCII:   "ASCII",
}

// String implements fmt.Stringer.
func (d DataType) String() string {
	if name, ok := dataTypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DataType(%d)", int32(d))
}

// StreamIdentifier names a logical data stream.
type StreamIdentifier struct {
	Network      string `protobuf:"bytes,1,opt,name=network,proto3" json:"network,omitempty"`
	Station      string `protobuf:"bytes,2,opt,name=station,proto3" json:"station,omitempty"`
	Channel      string `protobuf:"bytes,3,opt,name=channel,proto3" json:"channel,omitempty"`
	LocationCode string `protobuf:"bytes,4,opt,name=location_code,json=locationCode,proto3" json:"location_code,omitempty"`
}

func (m *StreamIdentifier) Reset()         { *m = StreamIdentifier{} }
func (m *StreamIdentifier) String() string { return fmt.Sprintf("%+v", *m) }
func (*StreamIdentifier) ProtoMessage()    {}

func (m *StreamIdentifier) GetNetwork() string {
	if m != nil {
		return m.Network
	}
	return ""
}

func (m *StreamIdentifier) GetStation() string {
	if m != nil {
		return m.Station
	}
	return ""
}

func (m *StreamIdentifier) GetChannel() string {
	if m != nil {
		return m.Channel
	}
	return ""
}

func (m *StreamIdentifier) GetLocationCode() string {
	if m != nil {
		return m.LocationCode
	}
	return ""
}

// Packet is one time-bounded sample burst tagged by stream identity.
type Packet struct {
	StreamIdentifier *StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`
	StartTimeMicros  int64             `protobuf:"varint,2,opt,name=start_time_micros,json=startTimeMicros,proto3" json:"start_time_micros,omitempty"`
	SamplingRateHz   float64           `protobuf:"fixed64,3,opt,name=sampling_rate_hz,json=samplingRateHz,proto3" json:"sampling_rate_hz,omitempty"`
	NumberOfSamples  int32             `protobuf:"varint,4,opt,name=number_of_samples,json=numberOfSamples,proto3" json:"number_of_samples,omitempty"`
	DataType         DataType          `protobuf:"varint,5,opt,name=data_type,json=dataType,proto3,enum=proxy.v1.DataType" json:"data_type,omitempty"`
	Data             []byte            `protobuf:"bytes,6,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Packet) Reset()         { *m = Packet{} }
func (m *Packet) String() string { return fmt.Sprintf("%+v", *m) }
func (*Packet) ProtoMessage()    {}

func (m *Packet) GetStreamIdentifier() *StreamIdentifier {
	if m != nil {
		return m.StreamIdentifier
	}
	return nil
}

func (m *Packet) GetStartTimeMicros() int64 {
	if m != nil {
		return m.StartTimeMicros
	}
	return 0
}

func (m *Packet) GetSamplingRateHz() float64 {
	if m != nil {
		return m.SamplingRateHz
	}
	return 0
}

func (m *Packet) GetNumberOfSamples() int32 {
	if m != nil {
		return m.NumberOfSamples
	}
	return 0
}

func (m *Packet) GetDataType() DataType {
	if m != nil {
		return m.DataType
	}
	return DataType_UNKNOWN
}

func (m *Packet) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

// PublishResponse is returned when a publish stream closes.
type PublishResponse struct {
	TotalPackets    int64 `protobuf:"varint,1,opt,name=total_packets,json=totalPackets,proto3" json:"total_packets,omitempty"`
	PacketsRejected int64 `protobuf:"varint,2,opt,name=packets_rejected,json=packetsRejected,proto3" json:"packets_rejected,omitempty"`
}

func (m *PublishResponse) Reset()         { *m = PublishResponse{} }
func (m *PublishResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*PublishResponse) ProtoMessage()    {}

func (m *PublishResponse) GetTotalPackets() int64 {
	if m != nil {
		return m.TotalPackets
	}
	return 0
}

func (m *PublishResponse) GetPacketsRejected() int64 {
	if m != nil {
		return m.PacketsRejected
	}
	return 0
}

// SubscriptionRequest opens a subscribe stream. ClientLabel is informational
// only; the core honors no per-stream filter.
type SubscriptionRequest struct {
	ClientLabel string `protobuf:"bytes,1,opt,name=client_label,json=clientLabel,proto3" json:"client_label,omitempty"`
}

func (m *SubscriptionRequest) Reset()         { *m = SubscriptionRequest{} }
func (m *SubscriptionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SubscriptionRequest) ProtoMessage()    {}

func (m *SubscriptionRequest) GetClientLabel() string {
	if m != nil {
		return m.ClientLabel
	}
	return ""
}

// HealthCheckRequest is the empty request for HealthService.Check.
type HealthCheckRequest struct{}

func (m *HealthCheckRequest) Reset()         { *m = HealthCheckRequest{} }
func (m *HealthCheckRequest) String() string { return "HealthCheckRequest{}" }
func (*HealthCheckRequest) ProtoMessage()    {}

// HealthCheckResponse reports proxy liveness.
type HealthCheckResponse struct {
	Status      string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Publishers  int64  `protobuf:"varint,2,opt,name=publishers,proto3" json:"publishers,omitempty"`
	Subscribers int64  `protobuf:"varint,3,opt,name=subscribers,proto3" json:"subscribers,omitempty"`
	PumpRunning bool   `protobuf:"varint,4,opt,name=pump_running,json=pumpRunning,proto3" json:"pump_running,omitempty"`
}

func (m *HealthCheckResponse) Reset()         { *m = HealthCheckResponse{} }
func (m *HealthCheckResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*HealthCheckResponse) ProtoMessage()    {}

func (m *HealthCheckResponse) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *HealthCheckResponse) GetPublishers() int64 {
	if m != nil {
		return m.Publishers
	}
	return 0
}

func (m *HealthCheckResponse) GetSubscribers() int64 {
	if m != nil {
		return m.Subscribers
	}
	return 0
}

func (m *HealthCheckResponse) GetPumpRunning() bool {
	if m != nil {
		return m.PumpRunning
	}
	return false
}
