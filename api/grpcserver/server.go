package grpcserver

import (
	"context"
	"errors"
	"log"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "tyr/api/pb"
	"tyr/domain/matching"
	"tyr/infra/ledger"
	"tyr/service"
)

// Server adapts EngineService to gRPC.
type Server struct {
	pb.UnimplementedEngineServer
	svc *service.EngineService
	led *ledger.Ledger
}

func NewServer(svc *service.EngineService, led *ledger.Ledger) *Server {
	return &Server{svc: svc, led: led}
}

// -------------------- Commands --------------------

func (s *Server) EnterOrder(ctx context.Context, req *pb.EnterOrderRequest) (*pb.OrderResponse, error) {
	resp, err := s.svc.EnterOrder(toCommand(req))
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] EnterOrder symbol=%s order=%d side=%d price=%d qty=%d status=%s trades=%d",
		req.Symbol, req.OrderId, req.Side, req.Price, req.Quantity,
		resp.Status, len(resp.Trades),
	)
	return fromResponse(resp), nil
}

func (s *Server) UpdateOrder(ctx context.Context, req *pb.EnterOrderRequest) (*pb.OrderResponse, error) {
	resp, err := s.svc.UpdateOrder(toCommand(req))
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] UpdateOrder symbol=%s order=%d status=%s trades=%d",
		req.Symbol, req.OrderId, resp.Status, len(resp.Trades),
	)
	return fromResponse(resp), nil
}

func (s *Server) DeleteOrder(ctx context.Context, req *pb.DeleteOrderRequest) (*pb.DeleteOrderResponse, error) {
	err := s.svc.DeleteOrder(&service.DeleteCommand{
		Symbol:  req.Symbol,
		Side:    int(req.Side),
		OrderID: req.OrderId,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf("[gRPC] DeleteOrder symbol=%s order=%d", req.Symbol, req.OrderId)
	return &pb.DeleteOrderResponse{Status: "ok"}, nil
}

func (s *Server) ChangeState(ctx context.Context, req *pb.ChangeStateRequest) (*pb.OrderResponse, error) {
	target, err := toState(req.State)
	if err != nil {
		return nil, toStatus(err)
	}
	resp, err := s.svc.ChangeState(req.Symbol, target)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] ChangeState symbol=%s state=%s trades=%d",
		req.Symbol, req.State, len(resp.Trades),
	)
	return fromResponse(resp), nil
}

// -------------------- Admin --------------------

func (s *Server) CreditBroker(ctx context.Context, req *pb.CreditBrokerRequest) (*pb.PartyResponse, error) {
	s.led.CreditBroker(req.BrokerId, req.Amount)
	log.Printf("[gRPC] CreditBroker id=%s amount=%d", req.BrokerId, req.Amount)
	return &pb.PartyResponse{Status: "ok"}, nil
}

func (s *Server) GrantPosition(ctx context.Context, req *pb.GrantPositionRequest) (*pb.PartyResponse, error) {
	s.led.GrantPosition(req.ShareholderId, req.Symbol, req.Quantity)
	log.Printf("[gRPC] GrantPosition id=%s symbol=%s qty=%d", req.ShareholderId, req.Symbol, req.Quantity)
	return &pb.PartyResponse{Status: "ok"}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetDepth(ctx context.Context, req *pb.DepthRequest) (*pb.DepthResponse, error) {
	levels, err := s.svc.Depth(req.Symbol, matching.Side(req.Side), int(req.MaxLevels))
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.DepthResponse{Symbol: req.Symbol}
	for _, l := range levels {
		resp.Levels = append(resp.Levels, &pb.DepthLevel{Price: l.Price, Quantity: l.Quantity})
	}
	return resp, nil
}

// -------------------- Converters --------------------

func toCommand(req *pb.EnterOrderRequest) *service.OrderCommand {
	return &service.OrderCommand{
		Symbol:        req.Symbol,
		RequestID:     req.RequestId,
		OrderID:       req.OrderId,
		Side:          int(req.Side),
		Quantity:      req.Quantity,
		Price:         req.Price,
		MinExecQty:    req.MinExecQty,
		PeakSize:      req.PeakSize,
		StopPrice:     req.StopPrice,
		BrokerID:      req.BrokerId,
		ShareholderID: req.ShareholderId,
	}
}

func toState(s string) (matching.MatchingState, error) {
	switch strings.ToUpper(s) {
	case "CONTINUOUS":
		return matching.StateContinuous, nil
	case "AUCTION":
		return matching.StateAuction, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "unknown state %q", s)
	}
}

func fromTrades(trades []service.TradeInfo) []*pb.Trade {
	out := make([]*pb.Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, &pb.Trade{
			Seq:      t.Seq,
			Price:    t.Price,
			Quantity: t.Quantity,
			BuyId:    t.BuyID,
			SellId:   t.SellID,
		})
	}
	return out
}

func fromResponse(resp *service.OrderResponse) *pb.OrderResponse {
	out := &pb.OrderResponse{
		RequestId: resp.RequestID,
		OrderId:   resp.OrderID,
		Status:    resp.Status.String(),
		Trades:    fromTrades(resp.Trades),
	}
	for _, a := range resp.Activations {
		out.Activations = append(out.Activations, &pb.Activation{
			OrderId: a.OrderID,
			Status:  a.Status.String(),
			Trades:  fromTrades(a.Trades),
		})
	}
	return out
}

func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, service.ErrUnknownSecurity),
		errors.Is(err, matching.ErrOrderNotFound),
		errors.Is(err, ledger.ErrUnknownParty):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, matching.ErrBothPeakAndStop),
		errors.Is(err, matching.ErrUnknownSide):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
