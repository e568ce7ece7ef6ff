package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexcesaro/log"
	"github.com/alexcesaro/log/golog"
	"github.com/dustin/go-humanize"
	flags "github.com/jessevdk/go-flags"

	chatserver "github.com/joker-ksh/Chat-Server-net-socket"
	"github.com/joker-ksh/Chat-Server-net-socket/chat"
	"github.com/joker-ksh/Chat-Server-net-socket/chat/message"
	"github.com/joker-ksh/Chat-Server-net-socket/tcpd"
	"github.com/joker-ksh/Chat-Server-net-socket/wsd"

	_ "net/http/pprof"
)

// Version of the binary, assigned during build.
var Version string = "dev"

// Options contains the flag options
type Options struct {
	Verbose []bool `short:"v" long:"verbose" description:"Show verbose logging."`
	Version bool   `long:"version" description:"Print version and exit."`
	Bind    string `long:"bind" description:"Host and port to listen on." default:"0.0.0.0:4000"`
	WSBind  string `long:"ws-bind" description:"Optional host and port for the WebSocket transport."`
	Pprof   int    `long:"pprof" description:"Enable pprof http server for profiling."`
}

var logLevels = []log.Level{
	log.Warning,
	log.Info,
	log.Debug,
}

func fail(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

func main() {
	options := Options{}
	parser := flags.NewParser(&options, flags.Default)
	p, err := parser.Parse()
	if err != nil {
		if p == nil {
			fmt.Print(err)
		}
		return
	}

	if options.Pprof != 0 {
		go func() {
			fmt.Println(http.ListenAndServe(fmt.Sprintf("localhost:%d", options.Pprof), nil))
		}()
	}

	if options.Version {
		fmt.Println(Version)
		return
	}

	// Figure out the log level
	numVerbose := len(options.Verbose)
	if numVerbose >= len(logLevels) {
		numVerbose = len(logLevels) - 1
	}

	logLevel := logLevels[numVerbose]
	logger := golog.New(os.Stderr, logLevel)
	chatserver.SetLogger(logger)

	if logLevel == log.Debug {
		// Enable logging from submodules
		chat.SetLogger(os.Stderr)
		message.SetLogger(os.Stderr)
		tcpd.SetLogger(os.Stderr)
		wsd.SetLogger(os.Stderr)
	}

	s, err := tcpd.Listen(options.Bind)
	if err != nil {
		fail(2, "Failed to listen on socket: %v\n", err)
	}
	defer s.Close()

	fmt.Printf("Listening for connections on %v\n", s.Addr().String())

	host := chatserver.NewHost()

	started := time.Now()

	go func() {
		for conn := range s.ServeConns() {
			go host.Connect(conn)
		}
	}()

	if options.WSBind != "" {
		ws := wsd.NewServer(options.WSBind)
		ws.HandlerFunc = func(conn *wsd.Conn) {
			host.Connect(conn)
		}
		defer ws.Close()

		fmt.Printf("Listening for WebSocket connections on %v\n", options.WSBind)

		go func() {
			if err := ws.ListenAndServe(); err != http.ErrServerClosed {
				logger.Errorf("WebSocket server failed: %v", err)
			}
		}()
	}

	// Construct interrupt handler
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	<-sig // Wait for ^C signal
	fmt.Fprintf(os.Stderr, "Interrupt signal detected, shutting down. Started %s.\n", humanize.Time(started))
}
