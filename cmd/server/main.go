package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"tyr/api/grpcserver"
	pb "tyr/api/pb"

	"tyr/infra/journal"
	"tyr/infra/kafka"
	"tyr/infra/ledger"
	"tyr/infra/outbox"
	"tyr/infra/sequence"
	"tyr/jobs/broadcaster"
	"tyr/jobs/depth"
	"tyr/service"
	"tyr/snapshot"
)

func main() {
	var (
		listenAddr   = flag.String("listen", ":50051", "gRPC listen address")
		symbols      = flag.String("symbols", "TYR1", "comma-separated securities to list")
		journalDir   = flag.String("journal-dir", "./data/journal", "audit journal directory")
		outboxDir    = flag.String("outbox-dir", "./data/outbox", "trade outbox directory")
		snapshotDir  = flag.String("snapshot-dir", "./data/snapshot", "snapshot directory")
		snapshotEach = flag.Duration("snapshot-interval", time.Minute, "snapshot interval")
		kafkaBrokers = flag.String("kafka-brokers", "", "comma-separated Kafka brokers (empty disables publishing)")
		tradeTopic   = flag.String("trade-topic", "tyr.trades", "Kafka topic for trade events")
		depthTopic   = flag.String("depth-topic", "tyr.depth", "Kafka topic for depth snapshots")
		depthEach    = flag.Duration("depth-interval", time.Second, "depth publish interval")
		depthLevels  = flag.Int("depth-levels", 10, "depth levels per side")
	)
	flag.Parse()

	// ---------------- Journal ----------------

	jrnl, err := journal.Open(journal.Config{
		Dir:             *journalDir,
		SegmentSize:     2 * 1024 * 1024,
		SegmentDuration: time.Minute,
	})
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}
	defer jrnl.Close()

	// ---------------- Outbox ----------------

	box, err := outbox.Open(*outboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer box.Close()

	// ---------------- Ledger / Sequencer ----------------

	led := ledger.New()
	seqGen := sequence.New(0)

	// ---------------- Service ----------------

	svc := service.NewEngineService(led, seqGen, jrnl, box)

	// ---------------- Snapshot restore ----------------

	if snap, err := snapshot.Load(*snapshotDir); err != nil {
		log.Fatalf("snapshot load failed: %v", err)
	} else if snap != nil {
		for _, sec := range snapshot.Restore(snap, led) {
			svc.AttachSecurity(sec)
		}
		seqGen.Reset(snap.Seq)
		log.Printf("[main] snapshot restored: seq=%d securities=%d", snap.Seq, len(snap.Securities))
	}

	for _, symbol := range strings.Split(*symbols, ",") {
		symbol = strings.TrimSpace(symbol)
		if symbol != "" {
			svc.RegisterSecurity(symbol)
		}
	}

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(ctx, *snapshotDir, *snapshotEach)

	if *kafkaBrokers != "" {
		brokers := strings.Split(*kafkaBrokers, ",")

		bc, err := broadcaster.New(box, brokers, *tradeTopic)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		bc.Start(ctx)

		producer := kafka.NewProducer(kafka.Config{
			Brokers: brokers,
			Topic:   *depthTopic,
			Lossy:   true,
		})
		defer producer.Close()
		depth.New(svc, producer, *depthEach, *depthLevels).Start(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterEngineServer(grpcSrv, grpcserver.NewServer(svc, led))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("[main] shutting down")
		cancel()
		// Give the snapshot job its final write before stopping traffic.
		time.Sleep(500 * time.Millisecond)
		grpcSrv.GracefulStop()
	}()

	fmt.Printf("Tyr engine running on %s\n", *listenAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
