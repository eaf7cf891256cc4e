package pb

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

// The messages here are hand-maintained in the legacy struct-tag form,
// so make sure the runtime actually derives working descriptors for
// them: a full marshal/unmarshal pass through the v2 API.

func TestEnterOrderRequestWireRoundTrip(t *testing.T) {
	in := &EnterOrderRequest{
		Symbol:        "TYR1",
		RequestId:     7,
		OrderId:       42,
		Side:          1,
		Quantity:      500,
		Price:         15500,
		MinExecQty:    100,
		PeakSize:      50,
		BrokerId:      "b1",
		ShareholderId: "sh1",
	}

	data, err := proto.Marshal(protoadapt.MessageV2Of(in))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := &EnterOrderRequest{}
	if err := proto.Unmarshal(data, protoadapt.MessageV2Of(out)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestOrderResponseNestedRoundTrip(t *testing.T) {
	in := &OrderResponse{
		RequestId: 7,
		OrderId:   42,
		Status:    "ACCEPTED",
		Trades: []*Trade{
			{Seq: 1, Price: 100, Quantity: 30, BuyId: 42, SellId: 9},
		},
		Activations: []*Activation{
			{
				OrderId: 11,
				Status:  "ACTIVATED",
				Trades:  []*Trade{{Seq: 2, Price: 99, Quantity: 10, BuyId: 5, SellId: 11}},
			},
		},
	}

	data, err := proto.Marshal(protoadapt.MessageV2Of(in))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := &OrderResponse{}
	if err := proto.Unmarshal(data, protoadapt.MessageV2Of(out)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.RequestId != in.RequestId || out.Status != in.Status {
		t.Errorf("header = %d/%s, want %d/%s", out.RequestId, out.Status, in.RequestId, in.Status)
	}
	if len(out.Trades) != 1 || *out.Trades[0] != *in.Trades[0] {
		t.Errorf("trades = %+v, want %+v", out.Trades, in.Trades)
	}
	if len(out.Activations) != 1 || out.Activations[0].OrderId != 11 {
		t.Errorf("activations = %+v, want order 11", out.Activations)
	}
	if len(out.Activations[0].Trades) != 1 || out.Activations[0].Trades[0].Price != 99 {
		t.Errorf("activation trades = %+v", out.Activations[0].Trades)
	}
}
