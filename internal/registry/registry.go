package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/astralworks/starcharter/internal/bus"
	"github.com/astralworks/starcharter/internal/logger"
	"github.com/gosimple/slug"
	"github.com/nats-io/nats.go/jetstream"
)

// Event is the append-only record stored in the JetStream event log. Every
// registry operation is an event; current state is always a reduce over them.
type Event struct {
	ID        string          `json:"id"`        // NATS message sequence ID
	Timestamp time.Time       `json:"timestamp"` // When the event occurred
	Profile   string          `json:"profile"`   // Player profile name
	Type      string          `json:"type"`      // Event type: organization
	Action    string          `json:"action"`    // chartered, dissolved
	Meta      json.RawMessage `json:"meta"`      // Action-specific payload
}

// Organization is a committed charter as recorded in the registry.
type Organization struct {
	Key          string    `json:"key"` // slug of the organization name
	Name         string    `json:"name"`
	VesselName   string    `json:"vessel_name"`
	HullClass    string    `json:"hull_class"`
	LocationID   string    `json:"location_id"`
	LocationName string    `json:"location_name"`
	Livery       [3]string `json:"livery"` // the three chosen channel colors
	Pattern      string    `json:"pattern"`
	CrewIDs      []string  `json:"crew_ids"`
	Balance      int64     `json:"balance"` // credits left after the charter
	CharteredAt  time.Time `json:"chartered_at"`
}

// Store manages the charter registry through JetStream event sourcing.
type Store struct {
	js     jetstream.JetStream
	stream jetstream.Stream
}

// NewStore creates a Store over an existing JetStream context and stream.
func NewStore(js jetstream.JetStream, stream jetstream.Stream) *Store {
	return &Store{js: js, stream: stream}
}

// RecordCharter appends a chartered-organization event for a profile.
// The organization key is derived from its name.
func (s *Store) RecordCharter(ctx context.Context, profile string, org Organization) error {
	org.Key = slug.Make(org.Name)
	if org.CharteredAt.IsZero() {
		org.CharteredAt = time.Now()
	}

	meta, err := json.Marshal(org)
	if err != nil {
		return fmt.Errorf("failed to marshal organization: %w", err)
	}

	event := Event{
		Timestamp: org.CharteredAt,
		Profile:   profile,
		Type:      bus.EventTypeOrganization,
		Action:    "chartered",
		Meta:      meta,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := bus.SubjectForEvent(profile, event.Type)
	logger.Debug("Publishing charter event: profile=%s org=%s", profile, org.Key)

	ack, err := s.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	logger.Debug("Charter event published: seq=%d", ack.Sequence)
	return nil
}

// State is the current registry contents for one profile, reconstructed from
// the event log.
type State struct {
	Profile       string          `json:"profile"`
	Organizations []*Organization `json:"organizations"`
}

// Apply folds one event into the state.
func (st *State) Apply(event Event) {
	if event.Type != bus.EventTypeOrganization {
		return
	}
	switch event.Action {
	case "chartered":
		var org Organization
		if err := json.Unmarshal(event.Meta, &org); err != nil {
			logger.Warn("Skipping charter event with bad meta: %v", err)
			return
		}
		if org.CharteredAt.IsZero() {
			org.CharteredAt = event.Timestamp
		}
		st.Organizations = append(st.Organizations, &org)

	case "dissolved":
		var meta struct {
			Key string `json:"key"`
		}
		if err := json.Unmarshal(event.Meta, &meta); err != nil {
			return
		}
		for i, org := range st.Organizations {
			if org.Key == meta.Key {
				st.Organizations = append(st.Organizations[:i], st.Organizations[i+1:]...)
				break
			}
		}
	}
}

// LoadState reconstructs a profile's registry by reading and reducing all of
// its events from the log.
func (s *Store) LoadState(ctx context.Context, profile string) (*State, error) {
	consumer, err := s.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: bus.SubjectForProfile(profile),
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	state := &State{Profile: profile}

	const batchSize = 1000
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		msgCount := 0
		for msg := range msgs.Messages() {
			msgCount++
			var event Event
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				meta, _ := msg.Metadata()
				logger.Warn("Skipping malformed event (seq=%d): %v", meta.Sequence.Stream, err)
				msg.Ack()
				continue
			}
			if event.ID == "" {
				meta, _ := msg.Metadata()
				event.ID = fmt.Sprintf("%d", meta.Sequence.Stream)
			}
			state.Apply(event)
			msg.Ack()
		}

		if msgCount < batchSize {
			break
		}
	}

	logger.Debug("Registry state loaded: profile=%s organizations=%d",
		profile, len(state.Organizations))
	return state, nil
}
