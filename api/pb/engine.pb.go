// Package pb holds the wire types for the Engine gRPC service, kept in
// lockstep with engine.proto. The messages use the legacy struct-tag
// form, which the protobuf runtime derives descriptors for at load
// time, so the package carries no generated descriptor blob.
package pb

import "fmt"

type EnterOrderRequest struct {
	Symbol        string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	RequestId     uint64 `protobuf:"varint,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	OrderId       uint64 `protobuf:"varint,3,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Side          int32  `protobuf:"varint,4,opt,name=side,proto3" json:"side,omitempty"`
	Quantity      int64  `protobuf:"varint,5,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Price         int64  `protobuf:"varint,6,opt,name=price,proto3" json:"price,omitempty"`
	MinExecQty    int64  `protobuf:"varint,7,opt,name=min_exec_qty,json=minExecQty,proto3" json:"min_exec_qty,omitempty"`
	PeakSize      int64  `protobuf:"varint,8,opt,name=peak_size,json=peakSize,proto3" json:"peak_size,omitempty"`
	StopPrice     int64  `protobuf:"varint,9,opt,name=stop_price,json=stopPrice,proto3" json:"stop_price,omitempty"`
	BrokerId      string `protobuf:"bytes,10,opt,name=broker_id,json=brokerId,proto3" json:"broker_id,omitempty"`
	ShareholderId string `protobuf:"bytes,11,opt,name=shareholder_id,json=shareholderId,proto3" json:"shareholder_id,omitempty"`
}

func (m *EnterOrderRequest) Reset()         { *m = EnterOrderRequest{} }
func (m *EnterOrderRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*EnterOrderRequest) ProtoMessage()    {}

type Trade struct {
	Seq      uint64 `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	Price    int64  `protobuf:"varint,2,opt,name=price,proto3" json:"price,omitempty"`
	Quantity int64  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	BuyId    uint64 `protobuf:"varint,4,opt,name=buy_id,json=buyId,proto3" json:"buy_id,omitempty"`
	SellId   uint64 `protobuf:"varint,5,opt,name=sell_id,json=sellId,proto3" json:"sell_id,omitempty"`
}

func (m *Trade) Reset()         { *m = Trade{} }
func (m *Trade) String() string { return fmt.Sprintf("%+v", *m) }
func (*Trade) ProtoMessage()    {}

type Activation struct {
	OrderId uint64   `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Status  string   `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Trades  []*Trade `protobuf:"bytes,3,rep,name=trades,proto3" json:"trades,omitempty"`
}

func (m *Activation) Reset()         { *m = Activation{} }
func (m *Activation) String() string { return fmt.Sprintf("%+v", *m) }
func (*Activation) ProtoMessage()    {}

type OrderResponse struct {
	RequestId   uint64        `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	OrderId     uint64        `protobuf:"varint,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Status      string        `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Trades      []*Trade      `protobuf:"bytes,4,rep,name=trades,proto3" json:"trades,omitempty"`
	Activations []*Activation `protobuf:"bytes,5,rep,name=activations,proto3" json:"activations,omitempty"`
}

func (m *OrderResponse) Reset()         { *m = OrderResponse{} }
func (m *OrderResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*OrderResponse) ProtoMessage()    {}

type DeleteOrderRequest struct {
	Symbol  string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Side    int32  `protobuf:"varint,2,opt,name=side,proto3" json:"side,omitempty"`
	OrderId uint64 `protobuf:"varint,3,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
}

func (m *DeleteOrderRequest) Reset()         { *m = DeleteOrderRequest{} }
func (m *DeleteOrderRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteOrderRequest) ProtoMessage()    {}

type DeleteOrderResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *DeleteOrderResponse) Reset()         { *m = DeleteOrderResponse{} }
func (m *DeleteOrderResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteOrderResponse) ProtoMessage()    {}

type ChangeStateRequest struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	State  string `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
}

func (m *ChangeStateRequest) Reset()         { *m = ChangeStateRequest{} }
func (m *ChangeStateRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ChangeStateRequest) ProtoMessage()    {}

type DepthRequest struct {
	Symbol    string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Side      int32  `protobuf:"varint,2,opt,name=side,proto3" json:"side,omitempty"`
	MaxLevels int32  `protobuf:"varint,3,opt,name=max_levels,json=maxLevels,proto3" json:"max_levels,omitempty"`
}

func (m *DepthRequest) Reset()         { *m = DepthRequest{} }
func (m *DepthRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DepthRequest) ProtoMessage()    {}

type DepthLevel struct {
	Price    int64 `protobuf:"varint,1,opt,name=price,proto3" json:"price,omitempty"`
	Quantity int64 `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *DepthLevel) Reset()         { *m = DepthLevel{} }
func (m *DepthLevel) String() string { return fmt.Sprintf("%+v", *m) }
func (*DepthLevel) ProtoMessage()    {}

type DepthResponse struct {
	Symbol string        `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Levels []*DepthLevel `protobuf:"bytes,2,rep,name=levels,proto3" json:"levels,omitempty"`
}

func (m *DepthResponse) Reset()         { *m = DepthResponse{} }
func (m *DepthResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*DepthResponse) ProtoMessage()    {}

type CreditBrokerRequest struct {
	BrokerId string `protobuf:"bytes,1,opt,name=broker_id,json=brokerId,proto3" json:"broker_id,omitempty"`
	Amount   int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *CreditBrokerRequest) Reset()         { *m = CreditBrokerRequest{} }
func (m *CreditBrokerRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreditBrokerRequest) ProtoMessage()    {}

type GrantPositionRequest struct {
	ShareholderId string `protobuf:"bytes,1,opt,name=shareholder_id,json=shareholderId,proto3" json:"shareholder_id,omitempty"`
	Symbol        string `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Quantity      int64  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *GrantPositionRequest) Reset()         { *m = GrantPositionRequest{} }
func (m *GrantPositionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GrantPositionRequest) ProtoMessage()    {}

type PartyResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *PartyResponse) Reset()         { *m = PartyResponse{} }
func (m *PartyResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*PartyResponse) ProtoMessage()    {}
