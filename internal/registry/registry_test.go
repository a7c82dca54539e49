package registry

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/astralworks/starcharter/internal/bus"
)

func charterEvent(t *testing.T, org Organization) Event {
	t.Helper()
	meta, err := json.Marshal(org)
	if err != nil {
		t.Fatalf("marshal organization: %v", err)
	}
	return Event{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Profile:   "default",
		Type:      bus.EventTypeOrganization,
		Action:    "chartered",
		Meta:      meta,
	}
}

func TestApplyChartered(t *testing.T) {
	st := &State{Profile: "default"}

	st.Apply(charterEvent(t, Organization{
		Key:        "void-runners",
		Name:       "Void Runners",
		VesselName: "Kestrel",
		HullClass:  "Sparrow",
		Balance:    1200,
	}))

	if len(st.Organizations) != 1 {
		t.Fatalf("got %d organizations, want 1", len(st.Organizations))
	}
	org := st.Organizations[0]
	if org.Name != "Void Runners" || org.VesselName != "Kestrel" {
		t.Errorf("unexpected organization: %+v", org)
	}
	if org.CharteredAt.IsZero() {
		t.Error("CharteredAt should fall back to the event timestamp")
	}
}

func TestApplyDissolved(t *testing.T) {
	st := &State{Profile: "default"}
	st.Apply(charterEvent(t, Organization{Key: "alpha", Name: "Alpha"}))
	st.Apply(charterEvent(t, Organization{Key: "beta", Name: "Beta"}))

	meta, _ := json.Marshal(map[string]string{"key": "alpha"})
	st.Apply(Event{
		Profile: "default",
		Type:    bus.EventTypeOrganization,
		Action:  "dissolved",
		Meta:    meta,
	})

	if len(st.Organizations) != 1 {
		t.Fatalf("got %d organizations after dissolve, want 1", len(st.Organizations))
	}
	if st.Organizations[0].Key != "beta" {
		t.Errorf("wrong organization survived: %s", st.Organizations[0].Key)
	}
}

func TestApplyIgnoresUnknownEvents(t *testing.T) {
	st := &State{Profile: "default"}

	st.Apply(Event{Type: "weather", Action: "storm"})
	st.Apply(Event{Type: bus.EventTypeOrganization, Action: "renamed"})
	st.Apply(Event{Type: bus.EventTypeOrganization, Action: "chartered", Meta: []byte("{broken")})

	if len(st.Organizations) != 0 {
		t.Errorf("got %d organizations, want 0", len(st.Organizations))
	}
}

func TestSubjectScheme(t *testing.T) {
	if got := bus.SubjectForProfile("captain"); got != "starcharter.captain.>" {
		t.Errorf("SubjectForProfile = %q", got)
	}
	if got := bus.SubjectForEvent("captain", bus.EventTypeOrganization); got != "starcharter.captain.organization" {
		t.Errorf("SubjectForEvent = %q", got)
	}
}
