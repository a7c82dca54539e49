package bus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/astralworks/starcharter/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const streamName = "starcharter_events"

// Event types carried on the bus.
const (
	EventTypeOrganization = "organization"
)

// SubjectForProfile returns the wildcard subject pattern for all events under
// a player profile. Example: "starcharter.default.>"
func SubjectForProfile(profile string) string {
	return fmt.Sprintf("starcharter.%s.>", profile)
}

// SubjectForEvent returns the specific subject for an event type under a
// profile. Example: "starcharter.default.organization"
func SubjectForEvent(profile, eventType string) string {
	return fmt.Sprintf("starcharter.%s.%s", profile, eventType)
}

// StartEmbedded starts an embedded NATS server with JetStream enabled using
// the given data directory for file-based storage. The server binds no
// network ports; connections are in-process only.
func StartEmbedded(dataDir string) (*server.Server, error) {
	logger.Debug("Starting embedded NATS server with data dir: %s", dataDir)

	opts := &server.Options{
		JetStream:  true,
		StoreDir:   dataDir,
		DontListen: true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		logger.Error("Failed to create NATS server: %v", err)
		return nil, err
	}

	go ns.Start()

	if !ns.ReadyForConnections(4 * time.Second) {
		logger.Error("NATS server failed to start within 4s timeout")
		return nil, errors.New("nats server failed to start within timeout")
	}

	logger.Debug("NATS server ready for connections")
	return ns, nil
}

// ConnectInProcess creates an in-process connection to the embedded server.
func ConnectInProcess(ns *server.Server) (*nats.Conn, error) {
	conn, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		logger.Error("Failed to connect to NATS in-process: %v", err)
		return nil, err
	}
	return conn, nil
}

// SetupStream creates or updates the JetStream stream holding charter events.
// The subject pattern matches every profile and event type.
func SetupStream(ctx context.Context, nc *nats.Conn) (jetstream.JetStream, jetstream.Stream, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{"starcharter.>"},
		Storage:  jetstream.FileStorage,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create stream: %w", err)
	}
	return js, stream, nil
}

// Shutdown drains the connection, then stops the server. Both steps run under
// timeouts so a wedged server cannot hang process exit.
func Shutdown(nc *nats.Conn, ns *server.Server) error {
	if nc != nil {
		drainDone := make(chan error, 1)
		go func() {
			drainDone <- nc.Drain()
		}()

		select {
		case err := <-drainDone:
			if err != nil {
				logger.Warn("NATS drain failed, forcing close: %v", err)
				nc.Close()
			}
		case <-time.After(2 * time.Second):
			logger.Warn("NATS drain timed out after 2s, forcing close")
			nc.Close()
		}
	}

	if ns != nil {
		ns.Shutdown()

		shutdownDone := make(chan struct{})
		go func() {
			ns.WaitForShutdown()
			close(shutdownDone)
		}()

		select {
		case <-shutdownDone:
			logger.Debug("NATS server shut down cleanly")
		case <-time.After(5 * time.Second):
			logger.Error("NATS server shutdown timed out after 5s")
			return errors.New("NATS server shutdown timed out")
		}
	}

	return nil
}
