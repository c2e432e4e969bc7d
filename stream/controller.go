package stream

import (
	"time"

	log "github.com/mgutz/logxi/v1"

	"github.com/matt-g-everett/ledtween/tween"
)

// Controller that manages animations. It plays each show for animationTime
// and crossfades into the next over transitionTime.
type Controller struct {
	shows         []*Show
	index         int
	animation     *Show
	nextAnimation *Show

	animationTime  float64
	transitionTime float64
	transition     float64

	tl      *tween.Timeline
	started bool
	logger  log.Logger
}

// NewController creates an instance of a Controller. It needs at least one
// show.
func NewController(shows []*Show, animationTime, transitionTime time.Duration) *Controller {
	c := new(Controller)
	c.shows = shows
	c.animation = shows[0]
	c.nextAnimation = nil
	c.animationTime = animationTime.Seconds()
	c.transitionTime = transitionTime.Seconds()
	c.transition = 0.0
	c.tl = tween.New()
	c.logger = logger

	return c
}

// Current returns the show on the strip, and the one fading in if a
// transition is running.
func (c *Controller) Current() (*Show, *Show) {
	return c.animation, c.nextAnimation
}

// Transition returns how far the crossfade has got, from 0 to 1.
func (c *Controller) Transition() float64 {
	return c.transition
}

// CalculateFrame renders the frame for seconds, blending shows while a
// transition runs.
func (c *Controller) CalculateFrame(seconds float64) *Frame {
	if !c.started {
		c.started = true
		c.tl.StepTo(seconds)
		c.animation.Start(seconds)
		c.tl.AddCue(c.cycleAnimation, seconds+c.animationTime)
	}
	c.tl.StepTo(seconds)

	if c.nextAnimation != nil {
		f1 := c.animation.CalculateFrame(seconds)
		f2 := c.nextAnimation.CalculateFrame(seconds)
		return f1.Blend(f2, c.transition)
	}

	return c.animation.CalculateFrame(seconds)
}

func (c *Controller) cycleAnimation() {
	now := c.tl.CurrentTime()
	c.tl.AddCue(c.cycleAnimation, now+c.animationTime)

	if len(c.shows) < 2 || c.nextAnimation != nil {
		return
	}

	c.index = (c.index + 1) % len(c.shows)
	c.nextAnimation = c.shows[c.index]
	c.nextAnimation.Start(now)
	c.logger.Info("cycling animation", "from", c.animation.Name(), "to", c.nextAnimation.Name())

	c.transition = 0.0
	tween.Apply(c.tl, &c.transition, 1.0, c.transitionTime, tween.DefaultEase)
	c.tl.AddCue(c.finishTransition, now+c.transitionTime)
}

func (c *Controller) finishTransition() {
	c.animation = c.nextAnimation
	c.nextAnimation = nil
	c.transition = 0.0
}
