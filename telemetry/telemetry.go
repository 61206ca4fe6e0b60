package telemetry

import (
	"io"

	analytics "github.com/segmentio/analytics-go"
)

var (
	// Overwrite this function for tests
	CreateActiveTelemetry = newSegmentClient
)

type Client interface {
	io.Closer
	// Send a telemetry event. Events are built by the constructors in events.go.
	Track(event Event) error
}

// Event is a single usage event sent to the telemetry backend.
// Important: this is not meant to be constructed directly apart in tests.
// If you want to create a new event, add its constructor in ./events.go
type Event struct {
	Object     string                 `json:"object"`
	Action     string                 `json:"action"`
	Properties map[string]interface{} `json:"properties"`
}

type User struct {
	UniqueID string
	OS       string
	Version  string
}

// CreateClient returns the client used to send telemetry events. When the
// user has not opted in, it is a no-op.
func CreateClient(user User, enabled bool) Client {
	if !enabled {
		return nullClient{}
	}

	return CreateActiveTelemetry(user)
}

// Null client
// Used when telemetry is disabled

type nullClient struct{}

func (cli nullClient) Close() error { return nil }

func (cli nullClient) Track(_ Event) error { return nil }

// Segment client
// Used when telemetry is enabled

type segmentClient struct {
	cli  analytics.Client
	user User
}

const (
	segmentKey = ""
)

func newSegmentClient(user User) Client {
	cli := analytics.New(segmentKey)

	userID := user.UniqueID
	if userID == "" {
		userID = "none"
	}

	_ = cli.Enqueue(
		analytics.Identify{
			UserId: userID,
			Traits: analytics.NewTraits().Set("os", user.OS),
		},
	)

	return &segmentClient{cli, user}
}

func (segment *segmentClient) Track(event Event) error {
	if event.Properties == nil {
		event.Properties = make(map[string]interface{})
	}
	event.Properties["action"] = event.Action

	if segment.user.UniqueID != "" {
		event.Properties["UUID"] = segment.user.UniqueID
	}

	if segment.user.OS != "" {
		event.Properties["os"] = segment.user.OS
	}

	if segment.user.Version != "" {
		event.Properties["cli_version"] = segment.user.Version
	}

	return segment.cli.Enqueue(analytics.Track{
		UserId:     segment.user.UniqueID,
		Event:      event.Object,
		Properties: event.Properties,
	})
}

func (segment *segmentClient) Close() error {
	return segment.cli.Close()
}
