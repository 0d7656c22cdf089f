package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledbolt/api"
	"github.com/matt-g-everett/ledbolt/stream"
	"github.com/matt-g-everett/ledbolt/term"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer

	closers []func()
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

func (a *app) readConfig(configPath string) {
	if configPath == "" {
		a.Config = stream.DefaultConfig()
		return
	}

	config, err := stream.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}
	a.Config = config
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func (a *app) connectMqtt() {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.closers = append(a.closers, func() { a.Client.Disconnect(250) })
}

// openSink prepares the configured sink. quit stops the stream.
func (a *app) openSink(quit func(), logPath string) stream.Sink {
	switch a.Config.Render.Sink {
	case stream.SinkTerminal:
		// The terminal is the display, so logs go to a file.
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(err)
		}
		log.SetOutput(logFile)
		a.closers = append(a.closers, func() { logFile.Close() })

		screen, err := term.New()
		if err != nil {
			panic(err)
		}
		a.closers = append(a.closers, screen.Fini)
		go screen.HandleEvents(quit)
		return screen

	case stream.SinkMqtt:
		a.connectMqtt()
		return stream.NewMqttSink(a.Client, a.Config.Mqtt.Topics.Stream, a.Config.Mqtt.Qos)

	case stream.SinkHTTP:
		server := api.NewApi()
		go func() {
			if err := server.Serve(a.Config.Render.Listen); err != nil {
				log.Printf("HTTP server: %v", err)
				quit()
			}
		}()
		return server

	default:
		return &stream.LogSink{Every: int(1000 / a.Config.Render.FrameMs)}
	}
}

func (a *app) run(ctx context.Context) {
	if err := a.Streamer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Stream stopped: %v", err)
	}
}

func main() {
	mqtt.ERROR = log.New(os.Stderr, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "", "YAML config file. Defaults are used when empty.")
	sinkName := flag.String("sink", "", "Override the configured sink: terminal, mqtt, http or log.")
	logPath := flag.String("log", "ledbolt.log", "Log file used while drawing on the terminal.")
	watch := flag.Bool("watch", true, "Reload the style when the config file changes.")
	flag.Parse()

	a := newApp()
	a.readConfig(*configPath)
	if *sinkName != "" {
		a.Config.Render.Sink = *sinkName
		if err := a.Config.Validate(); err != nil {
			panic(err)
		}
	}
	log.Printf("Render: %+v Geometry: %+v Bolts: %d", a.Config.Render, a.Config.Geometry, len(a.Config.Bolts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lightning, err := stream.NewLightning(a.Config, stream.NewRand(a.Config.Geometry.Seed))
	if err != nil {
		panic(err)
	}
	for i, b := range lightning.Bolts() {
		log.Printf("Bolt %d: %d segments, %d points per frame", i, b.Nodes(), b.Root().Len()+2)
	}

	controller, err := stream.NewController(lightning, a.Config.Render.FrameMs, a.Config.Style, stream.NewRand(0))
	if err != nil {
		panic(err)
	}

	sink := a.openSink(stop, *logPath)
	defer a.close()

	a.Streamer = stream.NewStreamer(controller, sink, a.Config.Render.FrameMs)
	if *watch && *configPath != "" {
		reload, err := stream.WatchConfig(ctx, *configPath)
		if err != nil {
			log.Printf("Config watch disabled: %v", err)
		} else {
			a.Streamer.Watch(reload)
		}
	}

	a.run(ctx)
}
