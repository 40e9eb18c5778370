package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffyg/wirehttp"
)

func main() {
	proxyAddr := flag.String("proxy", "", "send the request through an HTTP proxy at host:port")
	timeout := flag.Duration("timeout", 30*time.Second, "dial and I/O deadline")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wirefetch [-proxy host:port] [-timeout d] <url>")
		os.Exit(2)
	}
	target := flag.Arg(0)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}
	wirehttp.SetupWireHTTPLogger(&logger)

	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		logger.Fatal().Err(err).Str("target", target).Msg("cannot parse target URL")
	}

	addr := *proxyAddr
	if addr == "" {
		addr = u.Host
		if u.Port() == "" {
			addr = net.JoinHostPort(u.Hostname(), fmt.Sprint(wirehttp.DefaultPort))
		}
	}

	nc, err := net.DialTimeout("tcp", addr, *timeout)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", addr).Msg("dial failed")
	}
	defer nc.Close()
	nc.SetDeadline(time.Now().Add(*timeout))

	var conn *wirehttp.Conn
	if *proxyAddr != "" {
		conn = wirehttp.NewProxyConn(nc)
	} else {
		conn = wirehttp.NewConn(nc)
	}

	client := wirehttp.NewClient(conn)
	rsp, body, err := client.Fetch("GET", wirehttp.Plain(target), nil, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("request failed")
	}

	fmt.Fprintf(os.Stderr, "%s %d %s\n", rsp.Version, rsp.StatusCode, rsp.StatusText)
	rsp.Header.WriteTo(os.Stderr)

	if body == nil {
		os.Exit(1)
	}
	if _, err := io.Copy(os.Stdout, body); err != nil {
		logger.Fatal().Err(err).Msg("reading body")
	}
}
