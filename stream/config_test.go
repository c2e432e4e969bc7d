package stream

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleConfig = `
mqtt:
  url: tcp://broker:1883
  username: file-user
  topics:
    stream: home/tree/stream
animationTime: 30s
shows:
  - name: sweep
    palindrome: true
    layers:
      - name: comet
        colour: "#ff4020"
        width: 12
    steps:
      - layer: comet
        property: position
        to: 480
        duration: 4
        ease: outAtan(8)
`

func TestLoadConfig(t *testing.T) {
	t.Setenv(envPassword, "secret")

	c, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	if c.Mqtt.URL != "tcp://broker:1883" || c.Mqtt.Topics.Stream != "home/tree/stream" {
		t.Errorf("mqtt = %+v", c.Mqtt)
	}
	if c.Mqtt.Username != "file-user" || c.Mqtt.Password != "secret" {
		t.Errorf("credentials = %q / %q", c.Mqtt.Username, c.Mqtt.Password)
	}
	if c.Mqtt.ClientID != defaultClientID {
		t.Errorf("client id = %q, want default", c.Mqtt.ClientID)
	}
	if c.AnimationTime != 30*time.Second || c.TransitionTime != defaultTransitionTime {
		t.Errorf("times = %v, %v", c.AnimationTime, c.TransitionTime)
	}
	if c.FrameRate != defaultFrameRate {
		t.Errorf("frame rate = %v, want %v", c.FrameRate, defaultFrameRate)
	}

	shows, err := c.BuildShows(ShowOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(shows) != 1 || shows[0].Name() != "sweep" {
		t.Fatalf("shows = %v", shows)
	}
	if len(c.Shows[0].Steps) != 1 || c.Shows[0].Steps[0].Ease != "outAtan(8)" {
		t.Errorf("steps = %+v", c.Shows[0].Steps)
	}
}

func TestLoadConfigEnvOverridesUsername(t *testing.T) {
	t.Setenv(envUsername, "env-user")

	c, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	if c.Mqtt.Username != "env-user" {
		t.Errorf("username = %q, want env-user", c.Mqtt.Username)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"Malformed", "shows: [", "could not parse"},
		{"NoShows", "frameRate: 20\n", "no shows"},
		{"NegativeFrameRate", "frameRate: -1\nshows: [{name: a}]\n", "frameRate"},
		{"TransitionTooLong", "animationTime: 2s\ntransitionTime: 3s\nshows: [{name: a}]\n", "transitionTime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error")
	}
}

func TestBuildShowsReportsBadScript(t *testing.T) {
	c := &Config{Shows: []Script{{Name: "broken", Background: "nope"}}}
	_, err := c.BuildShows(ShowOptions{})
	if err == nil || !strings.Contains(err.Error(), `show "broken"`) {
		t.Errorf("error = %v", err)
	}
}
