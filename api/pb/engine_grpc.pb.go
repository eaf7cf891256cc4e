package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Engine_EnterOrder_FullMethodName    = "/tyr.engine.v1.Engine/EnterOrder"
	Engine_UpdateOrder_FullMethodName   = "/tyr.engine.v1.Engine/UpdateOrder"
	Engine_DeleteOrder_FullMethodName   = "/tyr.engine.v1.Engine/DeleteOrder"
	Engine_ChangeState_FullMethodName   = "/tyr.engine.v1.Engine/ChangeState"
	Engine_GetDepth_FullMethodName      = "/tyr.engine.v1.Engine/GetDepth"
	Engine_CreditBroker_FullMethodName  = "/tyr.engine.v1.Engine/CreditBroker"
	Engine_GrantPosition_FullMethodName = "/tyr.engine.v1.Engine/GrantPosition"
)

type EngineClient interface {
	EnterOrder(ctx context.Context, in *EnterOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	UpdateOrder(ctx context.Context, in *EnterOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	DeleteOrder(ctx context.Context, in *DeleteOrderRequest, opts ...grpc.CallOption) (*DeleteOrderResponse, error)
	ChangeState(ctx context.Context, in *ChangeStateRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	GetDepth(ctx context.Context, in *DepthRequest, opts ...grpc.CallOption) (*DepthResponse, error)
	CreditBroker(ctx context.Context, in *CreditBrokerRequest, opts ...grpc.CallOption) (*PartyResponse, error)
	GrantPosition(ctx context.Context, in *GrantPositionRequest, opts ...grpc.CallOption) (*PartyResponse, error)
}

type engineClient struct {
	cc grpc.ClientConnInterface
}

func NewEngineClient(cc grpc.ClientConnInterface) EngineClient {
	return &engineClient{cc}
}

func (c *engineClient) EnterOrder(ctx context.Context, in *EnterOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	out := new(OrderResponse)
	if err := c.cc.Invoke(ctx, Engine_EnterOrder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) UpdateOrder(ctx context.Context, in *EnterOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	out := new(OrderResponse)
	if err := c.cc.Invoke(ctx, Engine_UpdateOrder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) DeleteOrder(ctx context.Context, in *DeleteOrderRequest, opts ...grpc.CallOption) (*DeleteOrderResponse, error) {
	out := new(DeleteOrderResponse)
	if err := c.cc.Invoke(ctx, Engine_DeleteOrder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) ChangeState(ctx context.Context, in *ChangeStateRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	out := new(OrderResponse)
	if err := c.cc.Invoke(ctx, Engine_ChangeState_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) GetDepth(ctx context.Context, in *DepthRequest, opts ...grpc.CallOption) (*DepthResponse, error) {
	out := new(DepthResponse)
	if err := c.cc.Invoke(ctx, Engine_GetDepth_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) CreditBroker(ctx context.Context, in *CreditBrokerRequest, opts ...grpc.CallOption) (*PartyResponse, error) {
	out := new(PartyResponse)
	if err := c.cc.Invoke(ctx, Engine_CreditBroker_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) GrantPosition(ctx context.Context, in *GrantPositionRequest, opts ...grpc.CallOption) (*PartyResponse, error) {
	out := new(PartyResponse)
	if err := c.cc.Invoke(ctx, Engine_GrantPosition_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type EngineServer interface {
	EnterOrder(context.Context, *EnterOrderRequest) (*OrderResponse, error)
	UpdateOrder(context.Context, *EnterOrderRequest) (*OrderResponse, error)
	DeleteOrder(context.Context, *DeleteOrderRequest) (*DeleteOrderResponse, error)
	ChangeState(context.Context, *ChangeStateRequest) (*OrderResponse, error)
	GetDepth(context.Context, *DepthRequest) (*DepthResponse, error)
	CreditBroker(context.Context, *CreditBrokerRequest) (*PartyResponse, error)
	GrantPosition(context.Context, *GrantPositionRequest) (*PartyResponse, error)
}

// UnimplementedEngineServer may be embedded for forward compatibility.
type UnimplementedEngineServer struct{}

func (UnimplementedEngineServer) EnterOrder(context.Context, *EnterOrderRequest) (*OrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnterOrder not implemented")
}
func (UnimplementedEngineServer) UpdateOrder(context.Context, *EnterOrderRequest) (*OrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateOrder not implemented")
}
func (UnimplementedEngineServer) DeleteOrder(context.Context, *DeleteOrderRequest) (*DeleteOrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteOrder not implemented")
}
func (UnimplementedEngineServer) ChangeState(context.Context, *ChangeStateRequest) (*OrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChangeState not implemented")
}
func (UnimplementedEngineServer) GetDepth(context.Context, *DepthRequest) (*DepthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDepth not implemented")
}
func (UnimplementedEngineServer) CreditBroker(context.Context, *CreditBrokerRequest) (*PartyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreditBroker not implemented")
}
func (UnimplementedEngineServer) GrantPosition(context.Context, *GrantPositionRequest) (*PartyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GrantPosition not implemented")
}

func RegisterEngineServer(s grpc.ServiceRegistrar, srv EngineServer) {
	s.RegisterService(&Engine_ServiceDesc, srv)
}

func _Engine_EnterOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EnterOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).EnterOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_EnterOrder_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).EnterOrder(ctx, req.(*EnterOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_UpdateOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EnterOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).UpdateOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_UpdateOrder_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).UpdateOrder(ctx, req.(*EnterOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_DeleteOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).DeleteOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_DeleteOrder_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).DeleteOrder(ctx, req.(*DeleteOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_ChangeState_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ChangeStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).ChangeState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_ChangeState_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).ChangeState(ctx, req.(*ChangeStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_GetDepth_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DepthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).GetDepth(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_GetDepth_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).GetDepth(ctx, req.(*DepthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_CreditBroker_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreditBrokerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).CreditBroker(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_CreditBroker_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).CreditBroker(ctx, req.(*CreditBrokerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_GrantPosition_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GrantPositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).GrantPosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_GrantPosition_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).GrantPosition(ctx, req.(*GrantPositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Engine_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tyr.engine.v1.Engine",
	HandlerType: (*EngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "EnterOrder", Handler: _Engine_EnterOrder_Handler},
		{MethodName: "UpdateOrder", Handler: _Engine_UpdateOrder_Handler},
		{MethodName: "DeleteOrder", Handler: _Engine_DeleteOrder_Handler},
		{MethodName: "ChangeState", Handler: _Engine_ChangeState_Handler},
		{MethodName: "GetDepth", Handler: _Engine_GetDepth_Handler},
		{MethodName: "CreditBroker", Handler: _Engine_CreditBroker_Handler},
		{MethodName: "GrantPosition", Handler: _Engine_GrantPosition_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/pb/engine.proto",
}
