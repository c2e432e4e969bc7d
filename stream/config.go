package stream

import (
	"os"
	"time"

	log "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var logger = log.New("stream")

// SetLogLevel sets the level of the package logger.
func SetLogLevel(level int) {
	logger.SetLevel(level)
}

// Config is the YAML configuration of ledtween.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientId"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	FrameRate      float64       `yaml:"frameRate"`
	AnimationTime  time.Duration `yaml:"animationTime"`
	TransitionTime time.Duration `yaml:"transitionTime"`
	Chime          struct {
		Length time.Duration `yaml:"length"`
		Volume float64       `yaml:"volume"`
	} `yaml:"chime"`

	Shows []Script `yaml:"shows"`
}

const (
	defaultFrameRate      = 30.0
	defaultAnimationTime  = 60 * time.Second
	defaultTransitionTime = 5 * time.Second
	defaultChimeLength    = 150 * time.Millisecond
	defaultChimeVolume    = 0.5
	defaultClientID       = "ledtween"
	defaultStreamTopic    = "home/xmastree/stream"

	envUsername = "LEDTWEEN_MQTT_USERNAME"
	envPassword = "LEDTWEEN_MQTT_PASSWORD"
)

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open config")
	}
	defer f.Close()

	c := new(Config)
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(c); err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", path)
	}

	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.FrameRate == 0 {
		c.FrameRate = defaultFrameRate
	}
	if c.AnimationTime == 0 {
		c.AnimationTime = defaultAnimationTime
	}
	if c.TransitionTime == 0 {
		c.TransitionTime = defaultTransitionTime
	}
	if c.Chime.Length == 0 {
		c.Chime.Length = defaultChimeLength
	}
	if c.Chime.Volume == 0 {
		c.Chime.Volume = defaultChimeVolume
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = defaultClientID
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = defaultStreamTopic
	}

	if v, ok := os.LookupEnv(envUsername); ok {
		c.Mqtt.Username = v
	}
	if v, ok := os.LookupEnv(envPassword); ok {
		c.Mqtt.Password = v
	}
}

func (c *Config) validate() error {
	if c.FrameRate <= 0 {
		return errors.Errorf("frameRate must be positive, got %v", c.FrameRate)
	}
	if c.AnimationTime <= c.TransitionTime {
		return errors.Errorf("animationTime %v must be longer than transitionTime %v",
			c.AnimationTime, c.TransitionTime)
	}
	if len(c.Shows) == 0 {
		return errors.New("no shows configured")
	}
	return nil
}

// BuildShows builds every configured show.
func (c *Config) BuildShows(opts ShowOptions) ([]*Show, error) {
	shows := make([]*Show, 0, len(c.Shows))
	for _, script := range c.Shows {
		s, err := BuildShow(script, opts)
		if err != nil {
			return nil, err
		}
		shows = append(shows, s)
	}
	return shows, nil
}
