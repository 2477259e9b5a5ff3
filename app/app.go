package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CutieCat6778/reservation-frontdesk/config"
	"github.com/CutieCat6778/reservation-frontdesk/internal/handler"
	"github.com/CutieCat6778/reservation-frontdesk/internal/server"
	"github.com/CutieCat6778/reservation-frontdesk/internal/service/backend"
	"github.com/CutieCat6778/reservation-frontdesk/pkg/kafka"
	"github.com/CutieCat6778/reservation-frontdesk/pkg/logger"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "frontdesk")

	// The frontdesk stays usable without kafka; declines then report
	// delivery failures instead of queueing them.
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Warn("kafka producer unavailable, notification replay disabled", zap.Error(err))
		producer = nil
	}

	svc := backend.NewService(log, cfg)
	h := handler.New(log, cfg, svc, producer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gg, ctx := errgroup.WithContext(ctx)

	if producer != nil {
		cg, err := kafka.NewConsumerGroup(cfg.Kafka)
		if err != nil {
			log.Warn("kafka consumer group unavailable", zap.Error(err))
		} else {
			consumer := handler.NewConsumer(svc.SendMessage, log)
			gg.Go(func() error {
				defer cg.Close()
				return kafka.Consume(ctx, cg, consumer, kafka.NotificationTopic)
			})
		}
	}

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	gg.Go(func() error {
		return srv.Run()
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case termSig := <-sig:
		log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	case <-ctx.Done():
		log.Error("component failed", zap.Error(ctx.Err()))
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	if err := gg.Wait(); err != nil {
		log.Debug("shutdown", zap.Error(err))
	}
	if producer != nil {
		_ = producer.Close()
	}
	log.Info("Graceful shutdown finished")
}
