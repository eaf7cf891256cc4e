package service

import (
	"errors"
	"testing"

	"tyr/domain/matching"
	"tyr/infra/ledger"
	"tyr/infra/outbox"
	"tyr/infra/sequence"
)

func newTestEngine(t *testing.T, box *outbox.Outbox) (*EngineService, *ledger.Ledger) {
	t.Helper()
	led := ledger.New()
	led.CreditBroker("b1", 1_000_000)
	led.CreditBroker("b2", 1_000_000)
	led.GrantPosition("sh1", "TYR1", 100_000)
	led.GrantPosition("sh2", "TYR1", 100_000)

	svc := NewEngineService(led, sequence.New(0), nil, box)
	svc.RegisterSecurity("TYR1")
	return svc, led
}

func command(id uint64, side matching.Side, qty, price int64) *OrderCommand {
	broker, holder := "b1", "sh1"
	if side == matching.Sell {
		broker, holder = "b2", "sh2"
	}
	return &OrderCommand{
		Symbol:        "TYR1",
		RequestID:     id,
		OrderID:       id,
		Side:          int(side),
		Quantity:      qty,
		Price:         price,
		BrokerID:      broker,
		ShareholderID: holder,
	}
}

func TestEnterOrderMatchesAndStampsTrades(t *testing.T) {
	svc, _ := newTestEngine(t, nil)

	resp, err := svc.EnterOrder(command(1, matching.Sell, 100, 50))
	if err != nil {
		t.Fatalf("enter sell: %v", err)
	}
	if resp.Status != matching.StatusAccepted || len(resp.Trades) != 0 {
		t.Fatalf("sell resp = %v/%d trades, want ACCEPTED/0", resp.Status, len(resp.Trades))
	}

	resp, err = svc.EnterOrder(command(2, matching.Buy, 60, 50))
	if err != nil {
		t.Fatalf("enter buy: %v", err)
	}
	if len(resp.Trades) != 1 {
		t.Fatalf("got %d trades, want 1", len(resp.Trades))
	}
	tr := resp.Trades[0]
	if tr.Seq != 1 || tr.Price != 50 || tr.Quantity != 60 || tr.BuyID != 2 || tr.SellID != 1 {
		t.Errorf("trade = %+v, want seq 1 @50 x60 buy 2 sell 1", tr)
	}
}

func TestEnterOrderUnknownSecurity(t *testing.T) {
	svc, _ := newTestEngine(t, nil)
	cmd := command(1, matching.Buy, 10, 50)
	cmd.Symbol = "NOPE"
	if _, err := svc.EnterOrder(cmd); !errors.Is(err, ErrUnknownSecurity) {
		t.Errorf("err = %v, want ErrUnknownSecurity", err)
	}
}

func TestEnterOrderUnknownParty(t *testing.T) {
	svc, _ := newTestEngine(t, nil)
	cmd := command(1, matching.Buy, 10, 50)
	cmd.BrokerID = "ghost"
	if _, err := svc.EnterOrder(cmd); !errors.Is(err, ledger.ErrUnknownParty) {
		t.Errorf("err = %v, want ErrUnknownParty", err)
	}
}

func TestTradesFlowIntoOutbox(t *testing.T) {
	box, err := outbox.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	defer box.Close()
	svc, _ := newTestEngine(t, box)

	svc.EnterOrder(command(1, matching.Sell, 100, 50))
	if _, err := svc.EnterOrder(command(2, matching.Buy, 100, 50)); err != nil {
		t.Fatalf("enter buy: %v", err)
	}

	var events []outbox.TradeEvent
	if err := box.ScanPending(func(seq uint64, e outbox.Entry) error {
		events = append(events, e.Event)
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Symbol != "TYR1" || ev.Price != 50 || ev.Quantity != 100 || ev.BuyID != 2 || ev.SellID != 1 {
		t.Errorf("event = %+v", ev)
	}
}

func TestStopActivationReportedAsCascade(t *testing.T) {
	svc, _ := newTestEngine(t, nil)
	sec := svc.RegisterSecurity("TYR1")
	sec.LastTradePrice = 100

	// Park a sell stop below the market, back it with resting interest,
	// then trade down through its trigger.
	resp, err := svc.EnterOrder(&OrderCommand{
		Symbol: "TYR1", RequestID: 10, OrderID: 10,
		Side: int(matching.Sell), Quantity: 50, Price: 90, StopPrice: 95,
		BrokerID: "b2", ShareholderID: "sh2",
	})
	if err != nil {
		t.Fatalf("enter stop: %v", err)
	}
	if resp.Status != matching.StatusQueuedAsInactive {
		t.Fatalf("stop status = %v, want QUEUED_AS_INACTIVE", resp.Status)
	}

	svc.EnterOrder(command(11, matching.Buy, 50, 92))
	svc.EnterOrder(command(12, matching.Sell, 30, 94))
	resp, err = svc.EnterOrder(command(13, matching.Buy, 30, 94))
	if err != nil {
		t.Fatalf("enter trigger buy: %v", err)
	}
	if len(resp.Trades) != 1 || resp.Trades[0].Price != 94 {
		t.Fatalf("trigger trades = %+v, want one at 94", resp.Trades)
	}
	if len(resp.Activations) != 1 {
		t.Fatalf("got %d activations, want 1", len(resp.Activations))
	}
	act := resp.Activations[0]
	if act.OrderID != 10 || act.Status != matching.StatusActivated {
		t.Errorf("activation = %+v, want order 10 ACTIVATED", act)
	}
	if len(act.Trades) != 1 || act.Trades[0].Price != 92 || act.Trades[0].Quantity != 50 {
		t.Errorf("activation trades = %+v, want one at 92 x50", act.Trades)
	}
}

func TestChangeStateUncrossesAndPublishes(t *testing.T) {
	svc, _ := newTestEngine(t, nil)

	if _, err := svc.ChangeState("TYR1", matching.StateAuction); err != nil {
		t.Fatalf("enter auction: %v", err)
	}
	svc.EnterOrder(command(1, matching.Sell, 100, 50))
	svc.EnterOrder(command(2, matching.Buy, 100, 52))

	resp, err := svc.ChangeState("TYR1", matching.StateContinuous)
	if err != nil {
		t.Fatalf("leave auction: %v", err)
	}
	if len(resp.Trades) != 1 {
		t.Fatalf("got %d trades, want 1", len(resp.Trades))
	}
	if resp.Trades[0].Quantity != 100 {
		t.Errorf("uncross quantity = %d, want 100", resp.Trades[0].Quantity)
	}
}

func TestChangeStateReportsActivations(t *testing.T) {
	svc, _ := newTestEngine(t, nil)
	sec := svc.RegisterSecurity("TYR1")
	sec.LastTradePrice = 100

	// Park a sell stop, then uncross below its trigger.
	resp, err := svc.EnterOrder(&OrderCommand{
		Symbol: "TYR1", RequestID: 10, OrderID: 10,
		Side: int(matching.Sell), Quantity: 5, Price: 70, StopPrice: 90,
		BrokerID: "b2", ShareholderID: "sh2",
	})
	if err != nil {
		t.Fatalf("enter stop: %v", err)
	}
	if resp.Status != matching.StatusQueuedAsInactive {
		t.Fatalf("stop status = %v, want QUEUED_AS_INACTIVE", resp.Status)
	}

	svc.ChangeState("TYR1", matching.StateAuction)
	svc.EnterOrder(command(1, matching.Buy, 10, 80))
	svc.EnterOrder(command(2, matching.Sell, 10, 80))

	resp, err = svc.ChangeState("TYR1", matching.StateContinuous)
	if err != nil {
		t.Fatalf("leave auction: %v", err)
	}
	if len(resp.Trades) != 1 || resp.Trades[0].Price != 80 {
		t.Fatalf("uncross trades = %+v, want one at 80", resp.Trades)
	}
	if len(resp.Activations) != 1 {
		t.Fatalf("got %d activations, want 1", len(resp.Activations))
	}
	act := resp.Activations[0]
	if act.OrderID != 10 || act.Status != matching.StatusActivated {
		t.Errorf("activation = %+v, want order 10 ACTIVATED", act)
	}
	// No buy liquidity survived the uncross: the stop rests unfilled.
	if len(act.Trades) != 0 {
		t.Errorf("activation trades = %+v, want none", act.Trades)
	}
}

func TestUpdateAndDeleteThroughService(t *testing.T) {
	svc, _ := newTestEngine(t, nil)

	svc.EnterOrder(command(1, matching.Buy, 100, 50))

	upd := command(1, matching.Buy, 80, 50)
	resp, err := svc.UpdateOrder(upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.Status != matching.StatusUpdated {
		t.Errorf("update status = %v, want UPDATED", resp.Status)
	}

	if err := svc.DeleteOrder(&DeleteCommand{Symbol: "TYR1", Side: int(matching.Buy), OrderID: 1}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteOrder(&DeleteCommand{Symbol: "TYR1", Side: int(matching.Buy), OrderID: 1}); !errors.Is(err, matching.ErrOrderNotFound) {
		t.Errorf("second delete err = %v, want ErrOrderNotFound", err)
	}
}

func TestDepthQuery(t *testing.T) {
	svc, _ := newTestEngine(t, nil)

	svc.EnterOrder(command(1, matching.Buy, 100, 50))
	svc.EnterOrder(command(2, matching.Buy, 40, 50))
	svc.EnterOrder(command(3, matching.Buy, 70, 49))

	levels, err := svc.Depth("TYR1", matching.Buy, 0)
	if err != nil {
		t.Fatalf("depth: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("got %d levels, want 2", len(levels))
	}
	if levels[0].Price != 50 || levels[0].Quantity != 140 {
		t.Errorf("top level = %+v, want 50 x140", levels[0])
	}
}

func BenchmarkEnterOrderCrossing(b *testing.B) {
	led := ledger.New()
	led.CreditBroker("b1", 1<<60)
	led.CreditBroker("b2", 1<<60)
	led.GrantPosition("sh1", "TYR1", 1<<60)
	led.GrantPosition("sh2", "TYR1", 1<<60)
	svc := NewEngineService(led, sequence.New(0), nil, nil)
	svc.RegisterSecurity("TYR1")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := uint64(i)*2 + 1
		svc.EnterOrder(command(id, matching.Sell, 10, 50))
		svc.EnterOrder(command(id+1, matching.Buy, 10, 50))
	}
}
