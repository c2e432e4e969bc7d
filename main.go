package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	log "github.com/mgutz/logxi/v1"

	"github.com/matt-g-everett/ledtween/stream"
	"github.com/matt-g-everett/ledtween/tween"
)

var logger = log.New("ledtween")

type app struct {
	Config     *stream.Config
	Controller *stream.Controller
}

func newApp() *app {
	a := new(app)
	return a
}

func handleOnConnect(client mqtt.Client) {
	logger.Info("Connected")
}

func (a *app) runMqtt(ctx context.Context) {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(handleOnConnect)
	client := mqtt.NewClient(options)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		logger.Fatal("could not connect", "url", a.Config.Mqtt.URL, "err", token.Error())
	}
	defer client.Disconnect(250)

	sink := stream.NewMqttSink(client, a.Config.Mqtt.Topics.Stream)
	stream.NewStreamer(a.Controller, sink, a.Config.FrameRate).Run(ctx)
}

func (a *app) runPreview(ctx context.Context) {
	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("could not create screen", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("could not initialise screen", "err", err)
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					cancel()
					return
				}
			case *tcell.EventResize:
				screen.Clear()
			}
		}
	}()

	stream.NewStreamer(a.Controller, stream.NewPreviewSink(screen), a.Config.FrameRate).Run(ctx)
}

func main() {
	// mqtt.DEBUG = stdlog.New(os.Stdout, "", 0)
	mqtt.ERROR = stdlog.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	preview := flag.Bool("preview", false, "Draw the strip in the terminal instead of streaming over MQTT.")
	verbose := flag.Bool("v", false, "Enable debug logging in every package. LOGXI=name=level picks levels per logger.")
	flag.Parse()

	if *verbose {
		logger.SetLevel(log.LevelDebug)
		stream.SetLogLevel(log.LevelDebug)
		tween.SetLogLevel(log.LevelDebug)
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file, using the environment as is")
	}

	// Read the config
	a := newApp()
	config, err := stream.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("could not load config", "err", err)
	}
	a.Config = config
	logger.Info("Config loaded", "shows", len(config.Shows), "frameRate", config.FrameRate)

	opts := stream.ShowOptions{}
	if *preview {
		chimer, err := stream.NewSpeakerChimer(config.Chime.Length, config.Chime.Volume)
		if err != nil {
			logger.Warn("chimes disabled", "err", err)
		} else {
			defer chimer.Close()
			opts.Chimer = chimer
		}
	}

	shows, err := config.BuildShows(opts)
	if err != nil {
		logger.Fatal("could not build shows", "err", err)
	}
	a.Controller = stream.NewController(shows, config.AnimationTime, config.TransitionTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *preview {
		a.runPreview(ctx)
	} else {
		a.runMqtt(ctx)
	}
}
