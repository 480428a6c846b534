package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

const slowHealthThreshold = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Probe a running server's liveness and readiness endpoints"
}

func (c *HealthCheckCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "server base URL"},
		&cli.DurationFlag{Name: "timeout", Value: 5 * time.Second},
	}
}

func (c *HealthCheckCommand) Run(ctx *cli.Context) error {
	base := strings.TrimRight(ctx.String("url"), "/")
	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	client := &http.Client{Timeout: ctx.Duration("timeout")}
	for _, path := range []string{"/healthz", "/readyz"} {
		duration, err := probe(client, base+path)
		if err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if duration > slowHealthThreshold {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

func probe(client *http.Client, url string) (time.Duration, error) {
	start := time.Now()
	resp, err := client.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return time.Since(start), nil
}
